package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bracketpool/models"
	"bracketpool/repositories"
)

// SubmitPicksInput is one picks submission. WinnerPick names the predicted
// champion; FinalScore is the predicted combined championship score as the
// client sent it, parsed server-side.
type SubmitPicksInput struct {
	Picks      []models.PickInput `json:"user_picks"`
	WinnerPick *string            `json:"winner_pick,omitempty"`
	FinalScore *string            `json:"final_score,omitempty"`
}

type PickService interface {
	// SubmitPicks replaces the user's picks atomically, then commits the
	// champion pick and final score independently. An invalid final score
	// is reported as a validation error but does not roll back the parts
	// already committed.
	SubmitPicks(ctx context.Context, userID int, input SubmitPicksInput) error
	ResetPicks(ctx context.Context, userID int) error
	GetUserPicks(ctx context.Context, userID int) (map[int]models.PickedTeam, error)
}

type pickService struct {
	pickRepo repositories.PickRepository
	userRepo repositories.UserRepository
	teamRepo repositories.TeamRepository
	lockTime time.Time
}

func NewPickService(
	pickRepo repositories.PickRepository,
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	lockTime time.Time,
) PickService {
	return &pickService{
		pickRepo: pickRepo,
		userRepo: userRepo,
		teamRepo: teamRepo,
		lockTime: lockTime,
	}
}

// ensureUnlocked is the single deadline guard. Every mutating entry point
// calls it before touching storage.
func (s *pickService) ensureUnlocked() error {
	if time.Now().After(s.lockTime) {
		return ErrPicksLocked
	}
	return nil
}

func (s *pickService) SubmitPicks(ctx context.Context, userID int, input SubmitPicksInput) error {
	if err := s.ensureUnlocked(); err != nil {
		return err
	}

	if len(input.Picks) == 0 {
		return ErrNoPicksSubmitted
	}

	if err := s.replacePicks(ctx, userID, input.Picks); err != nil {
		return err
	}

	if input.WinnerPick != nil && *input.WinnerPick != "" {
		if err := s.setChampionPick(ctx, userID, *input.WinnerPick); err != nil {
			return err
		}
	}

	if input.FinalScore != nil && *input.FinalScore != "" {
		score, err := strconv.Atoi(*input.FinalScore)
		if err != nil {
			return ErrFinalScoreInvalid
		}
		if err := s.userRepo.UpdateFinalScore(ctx, userID, score); err != nil {
			return fmt.Errorf("failed to save final score for user %d: %w", userID, err)
		}
	}

	return nil
}

func (s *pickService) replacePicks(ctx context.Context, userID int, picks []models.PickInput) error {
	if err := s.pickRepo.ReplaceForUser(ctx, userID, picks); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPickGameInvalid):
			return fmt.Errorf("%w: unknown game", ErrValidationFailed)
		case errors.Is(err, repositories.ErrPickTeamInvalid):
			return fmt.Errorf("%w: unknown team", ErrValidationFailed)
		}
		return fmt.Errorf("failed to replace picks for user %d: %w", userID, err)
	}
	return nil
}

func (s *pickService) setChampionPick(ctx context.Context, userID int, teamName string) error {
	team, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrChampionTeamNotFound
		}
		return fmt.Errorf("failed to look up champion team %q: %w", teamName, err)
	}

	if err := s.userRepo.UpdateWinnerPick(ctx, userID, team.ID); err != nil {
		return fmt.Errorf("failed to save champion pick for user %d: %w", userID, err)
	}
	return nil
}

func (s *pickService) ResetPicks(ctx context.Context, userID int) error {
	if err := s.ensureUnlocked(); err != nil {
		return err
	}

	if err := s.pickRepo.DeleteForUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to reset picks for user %d: %w", userID, err)
	}
	return nil
}

func (s *pickService) GetUserPicks(ctx context.Context, userID int) (map[int]models.PickedTeam, error) {
	picks, err := s.pickRepo.MapByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load picks for user %d: %w", userID, err)
	}
	return picks, nil
}
