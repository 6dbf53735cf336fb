package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"bracketpool/brackets"
	"bracketpool/models"
	"bracketpool/repositories"
)

type GameService interface {
	ListGames(ctx context.Context) ([]*models.Game, error)

	// ResolveWinner records a real-world result (or clears one with a nil
	// winner) and propagates the winner into the matching slot of each
	// child game. The winner must occupy one of the game's two slots.
	ResolveWinner(ctx context.Context, gameID int, winnerID *int) (*models.Game, error)

	// UpcomingGames returns games with both teams known, each annotated
	// with the users who picked either side.
	UpcomingGames(ctx context.Context) ([]models.UpcomingGame, error)
}

type gameService struct {
	db       repositories.TxBeginner
	gameRepo repositories.GameRepository
	pickRepo repositories.PickRepository
	hub      *brackets.Hub
	logger   *slog.Logger
}

func NewGameService(
	db repositories.TxBeginner,
	gameRepo repositories.GameRepository,
	pickRepo repositories.PickRepository,
	hub *brackets.Hub,
	logger *slog.Logger,
) GameService {
	return &gameService{
		db:       db,
		gameRepo: gameRepo,
		pickRepo: pickRepo,
		hub:      hub,
		logger:   logger,
	}
}

func (s *gameService) ListGames(ctx context.Context) ([]*models.Game, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

func (s *gameService) ResolveWinner(ctx context.Context, gameID int, winnerID *int) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game %d: %w", gameID, err)
	}

	if winnerID != nil && !game.HasTeam(*winnerID) {
		return nil, ErrWinnerNotInGame
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin resolve transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.gameRepo.UpdateWinner(ctx, tx, gameID, winnerID); err != nil {
		return nil, fmt.Errorf("failed to update winner for game %d: %w", gameID, err)
	}

	// Push the winner into each child's slot fed by this game, and only
	// that slot. A nil winner clears the slot again.
	children, err := s.gameRepo.ListChildren(ctx, tx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load child games of %d: %w", gameID, err)
	}
	for _, child := range children {
		slot := repositories.TeamSlot1
		if child.SourceGame2 != nil && *child.SourceGame2 == gameID {
			slot = repositories.TeamSlot2
		}
		if err := s.gameRepo.SetTeamSlot(ctx, tx, child.ID, slot, winnerID); err != nil {
			return nil, fmt.Errorf("failed to propagate winner into game %d: %w", child.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resolve transaction: %w", err)
	}

	updated, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload game %d: %w", gameID, err)
	}

	s.logger.Info("game resolved",
		slog.Int("game_id", gameID),
		slog.Any("winner_id", winnerID),
		slog.Int("children_updated", len(children)),
	)

	s.hub.BroadcastToRoom(brackets.PoolRoom, brackets.Message{
		Type:    brackets.MessageGameResolved,
		Payload: brackets.NewGameView(updated),
	})
	s.hub.BroadcastToRoom(brackets.PoolRoom, brackets.Message{
		Type:    brackets.MessageScoreboardUpdated,
		Payload: map[string]int{"game_id": gameID},
	})

	return updated, nil
}

func (s *gameService) UpcomingGames(ctx context.Context) ([]models.UpcomingGame, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	picks, err := s.pickRepo.ListWithUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}

	picksByGame := make(map[int][]*repositories.PickWithUser)
	for _, pick := range picks {
		picksByGame[pick.GameID] = append(picksByGame[pick.GameID], pick)
	}

	upcoming := make([]models.UpcomingGame, 0)
	for _, g := range games {
		if g.Team1ID == nil || g.Team2ID == nil || g.Resolved() {
			continue
		}

		entry := models.UpcomingGame{
			Game:         brackets.NewGameView(g),
			Team1Pickers: []string{},
			Team2Pickers: []string{},
		}
		for _, pick := range picksByGame[g.ID] {
			switch pick.TeamID {
			case *g.Team1ID:
				entry.Team1Pickers = append(entry.Team1Pickers, pick.UserName)
			case *g.Team2ID:
				entry.Team2Pickers = append(entry.Team2Pickers, pick.UserName)
			}
		}
		upcoming = append(upcoming, entry)
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Game.GameTime.Before(upcoming[j].Game.GameTime)
	})

	return upcoming, nil
}
