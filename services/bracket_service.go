package services

import (
	"context"
	"errors"
	"fmt"

	"bracketpool/brackets"
	"bracketpool/models"
	"bracketpool/repositories"
)

// UserBracket is the full bracket page payload for one user: every region
// projected through their picks, plus their champion and final-score picks.
type UserBracket struct {
	Bracket    models.BracketView        `json:"bracket"`
	Winner     *models.ChampionPick      `json:"winner,omitempty"`
	FinalScore *int                      `json:"final_score,omitempty"`
	Picks      map[int]models.PickedTeam `json:"user_picks"`
}

type BracketService interface {
	GetUserBracket(ctx context.Context, userID int) (*UserBracket, error)
}

type bracketService struct {
	gameRepo repositories.GameRepository
	pickRepo repositories.PickRepository
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
}

func NewBracketService(
	gameRepo repositories.GameRepository,
	pickRepo repositories.PickRepository,
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
) BracketService {
	return &bracketService{
		gameRepo: gameRepo,
		pickRepo: pickRepo,
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

func (s *bracketService) GetUserBracket(ctx context.Context, userID int) (*UserBracket, error) {
	picks, err := s.pickRepo.MapByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load picks for user %d: %w", userID, err)
	}

	teamNames, err := s.teamRepo.NameLookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team names: %w", err)
	}

	view := make(models.BracketView, len(models.Regions))
	for _, region := range models.Regions {
		games, err := s.gameRepo.ListByRegion(ctx, region)
		if err != nil {
			return nil, fmt.Errorf("failed to load bracket for region %s: %w", region, err)
		}
		rounds := brackets.GroupByRound(games)
		view[brackets.RegionKey(region)] = brackets.Project(rounds, picks, teamNames)
	}

	result := &UserBracket{
		Bracket: view,
		Picks:   picks,
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	result.FinalScore = user.FinalScore

	if user.WinnerID != nil {
		team, err := s.teamRepo.GetByID(ctx, *user.WinnerID)
		if err != nil && !errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, fmt.Errorf("failed to load champion pick for user %d: %w", userID, err)
		}
		if team != nil {
			result.Winner = &models.ChampionPick{
				TeamID: team.ID,
				Seed:   team.Seed,
				Name:   team.Name,
			}
		}
	}

	return result, nil
}
