package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"bracketpool/brackets"
	"bracketpool/models"
	"bracketpool/repositories"
)

type ScoreboardService interface {
	ComputeScoreboard(ctx context.Context) ([]models.ScoreboardEntry, error)
}

type scoreboardService struct {
	userRepo repositories.UserRepository
	pickRepo repositories.PickRepository
	gameRepo repositories.GameRepository
	teamRepo repositories.TeamRepository
	scoring  brackets.ScoringTable
}

func NewScoreboardService(
	userRepo repositories.UserRepository,
	pickRepo repositories.PickRepository,
	gameRepo repositories.GameRepository,
	teamRepo repositories.TeamRepository,
	scoring brackets.ScoringTable,
) ScoreboardService {
	return &scoreboardService{
		userRepo: userRepo,
		pickRepo: pickRepo,
		gameRepo: gameRepo,
		teamRepo: teamRepo,
		scoring:  scoring,
	}
}

func (s *scoreboardService) ComputeScoreboard(ctx context.Context) ([]models.ScoreboardEntry, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	teamNames, err := s.teamRepo.NameLookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team names: %w", err)
	}

	// Per-user pick loading fans out; each user's map lands under the
	// mutex so the goroutines never share a write.
	picksByUser := make(map[int]map[int]models.PickedTeam, len(users))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for _, user := range users {
		user := user
		g.Go(func() error {
			picks, err := s.pickRepo.MapByUser(gCtx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to load picks for user %d: %w", user.ID, err)
			}
			mu.Lock()
			picksByUser[user.ID] = picks
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	completed := brackets.CompletedByID(games)
	return brackets.ComputeScoreboard(users, picksByUser, completed, games, s.scoring, teamNames), nil
}
