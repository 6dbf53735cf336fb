package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bracketpool/brackets"
	"bracketpool/models"
	"bracketpool/repositories"
)

// TournamentField lists each seeded region's 16 teams in seed order
// (index 0 is the 1 seed).
type TournamentField map[string][]string

// DefaultField is the 2025 bracket.
var DefaultField = TournamentField{
	models.RegionSouth: {
		"Auburn", "Michigan St.", "Iowa St.", "Texas A&M",
		"Michigan", "Ole Miss", "Marquette", "Louisville",
		"Creighton", "New Mexico", "N. Carolina", "UC San Diego",
		"Yale", "Lipscomb", "Bryant", "Alabama St.",
	},
	models.RegionMidwest: {
		"Houston", "Tennessee", "Kentucky", "Purdue",
		"Clemson", "Illinois", "UCLA", "Gonzaga",
		"Georgia", "Utah St.", "Xavier", "McNeese",
		"High Point", "Troy", "Wofford", "SIUE",
	},
	models.RegionWest: {
		"Florida", "St. John's", "Texas Tech", "Maryland",
		"Memphis", "Missouri", "Kansas", "UConn",
		"Oklahoma", "Arkansas", "Drake", "Colo St.",
		"Grand Canyon", "UNCW", "Omaha", "Norfolk St.",
	},
	models.RegionEast: {
		"Duke", "Alabama", "Wisconsin", "Arizona",
		"Oregon", "BYU", "Saint Mary's", "Miss. St.",
		"Baylor", "Vanderbilt", "VCU", "Liberty",
		"Akron", "Montana", "Robert Morris", "Mt St Mary's",
	},
}

type SeedService interface {
	// SeedTournament creates the 64-team field and the full six-round game
	// tree in one transaction. It is a no-op when teams already exist.
	SeedTournament(ctx context.Context, field TournamentField, gameTime time.Time) error
}

type seedService struct {
	db       repositories.TxBeginner
	teamRepo repositories.TeamRepository
	gameRepo repositories.GameRepository
	logger   *slog.Logger
}

func NewSeedService(
	db repositories.TxBeginner,
	teamRepo repositories.TeamRepository,
	gameRepo repositories.GameRepository,
	logger *slog.Logger,
) SeedService {
	return &seedService{
		db:       db,
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		logger:   logger,
	}
}

func (s *seedService) SeedTournament(ctx context.Context, field TournamentField, gameTime time.Time) error {
	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count teams: %w", err)
	}
	if count > 0 {
		s.logger.Info("tournament already seeded", slog.Int("teams", count))
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	teams := make([]*models.Team, 0, len(field)*16)
	for region, names := range field {
		for i, name := range names {
			team := &models.Team{
				Name:   name,
				Seed:   i + 1,
				Region: region,
			}
			if err := s.teamRepo.Create(ctx, tx, team); err != nil {
				return err
			}
			teams = append(teams, team)
		}
	}

	prev, err := brackets.BuildRoundOne(teams, gameTime)
	if err != nil {
		return fmt.Errorf("failed to build round 1: %w", err)
	}
	for _, game := range prev {
		if err := s.gameRepo.Create(ctx, tx, game); err != nil {
			return err
		}
	}

	for round := 2; round <= models.FinalRound; round++ {
		games, err := brackets.BuildNextRound(round, prev, gameTime)
		if err != nil {
			return fmt.Errorf("failed to build round %d: %w", round, err)
		}
		for _, game := range games {
			if err := s.gameRepo.Create(ctx, tx, game); err != nil {
				return err
			}
		}
		prev = games
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	s.logger.Info("tournament seeded",
		slog.Int("teams", len(teams)),
		slog.Int("regions", len(field)),
	)
	return nil
}
