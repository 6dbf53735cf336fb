package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"bracketpool/models"
)

var (
	ErrPickGameInvalid = errors.New("pick references an unknown game")
	ErrPickTeamInvalid = errors.New("pick references an unknown team")
)

// PickWithUser is one pick row joined with the picking user's display name,
// used by the upcoming-games view.
type PickWithUser struct {
	UserID   int
	UserName string
	GameID   int
	TeamID   int
}

type PickRepository interface {
	// MapByUser returns the user's picks keyed by game id, each carrying
	// the predicted team's seed.
	MapByUser(ctx context.Context, userID int) (map[int]models.PickedTeam, error)

	// ReplaceForUser deletes the user's existing picks and inserts the new
	// set inside one transaction, so readers never observe a partial
	// replacement.
	ReplaceForUser(ctx context.Context, userID int, picks []models.PickInput) error

	DeleteForUser(ctx context.Context, userID int) error
	ListWithUsers(ctx context.Context) ([]*PickWithUser, error)
}

type postgresPickRepository struct {
	db *sql.DB
}

func NewPostgresPickRepository(db *sql.DB) PickRepository {
	return &postgresPickRepository{db: db}
}

func (r *postgresPickRepository) MapByUser(ctx context.Context, userID int) (map[int]models.PickedTeam, error) {
	query := `
		SELECT up.game_id, up.predicted_winner_id, t.seed
		FROM user_picks up
			INNER JOIN teams t ON up.predicted_winner_id = t.id
		WHERE up.user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks for user %d: %w", userID, err)
	}
	defer rows.Close()

	picks := make(map[int]models.PickedTeam)
	for rows.Next() {
		var gameID int
		var pick models.PickedTeam
		if scanErr := rows.Scan(&gameID, &pick.TeamID, &pick.Seed); scanErr != nil {
			return nil, fmt.Errorf("failed to scan pick row: %w", scanErr)
		}
		picks[gameID] = pick
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during pick rows iteration: %w", err)
	}
	return picks, nil
}

func (r *postgresPickRepository) ReplaceForUser(ctx context.Context, userID int, picks []models.PickInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin pick replace transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_picks WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete picks for user %d: %w", userID, err)
	}

	query := `INSERT INTO user_picks (user_id, game_id, predicted_winner_id) VALUES ($1, $2, $3)`
	for _, pick := range picks {
		if _, err := tx.ExecContext(ctx, query, userID, pick.GameID, pick.TeamID); err != nil {
			return r.handlePickError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pick replace transaction: %w", err)
	}
	return nil
}

func (r *postgresPickRepository) DeleteForUser(ctx context.Context, userID int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_picks WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete picks for user %d: %w", userID, err)
	}
	return nil
}

func (r *postgresPickRepository) ListWithUsers(ctx context.Context) ([]*PickWithUser, error) {
	query := `
		SELECT up.user_id, u.name, up.game_id, up.predicted_winner_id
		FROM user_picks up
			INNER JOIN users u ON up.user_id = u.id
		ORDER BY u.name, up.game_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks with users: %w", err)
	}
	defer rows.Close()

	picks := make([]*PickWithUser, 0)
	for rows.Next() {
		pick := &PickWithUser{}
		if scanErr := rows.Scan(&pick.UserID, &pick.UserName, &pick.GameID, &pick.TeamID); scanErr != nil {
			return nil, fmt.Errorf("failed to scan pick-with-user row: %w", scanErr)
		}
		picks = append(picks, pick)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during pick-with-user rows iteration: %w", err)
	}
	return picks, nil
}

func (r *postgresPickRepository) handlePickError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Constraint {
		case "user_picks_game_id_fkey":
			return ErrPickGameInvalid
		case "user_picks_predicted_winner_id_fkey":
			return ErrPickTeamInvalid
		}
	}
	return err
}
