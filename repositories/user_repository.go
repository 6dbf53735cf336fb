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
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNameConflict = errors.New("user name is already taken")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateWinnerPick(ctx context.Context, userID int, teamID int) error
	UpdateFinalScore(ctx context.Context, userID int, score int) error
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, role, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Role,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "users_name_key" {
			return ErrUserNameConflict
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *postgresUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	return r.getOne(ctx, `WHERE name = $1`, name)
}

func (r *postgresUserRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	query := `
		SELECT id, name, role, password_hash, winner_id, final_score, created_at
		FROM users ` + where

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Role,
		&user.PasswordHash,
		&user.WinnerID,
		&user.FinalScore,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, name, role, winner_id, final_score, created_at
		FROM users
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		if scanErr := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Role,
			&user.WinnerID,
			&user.FinalScore,
			&user.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", scanErr)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during user rows iteration: %w", err)
	}
	return users, nil
}

func (r *postgresUserRepository) UpdateWinnerPick(ctx context.Context, userID int, teamID int) error {
	query := `UPDATE users SET winner_id = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to update winner pick for user %d: %w", userID, err)
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) UpdateFinalScore(ctx context.Context, userID int, score int) error {
	query := `UPDATE users SET final_score = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, score, userID)
	if err != nil {
		return fmt.Errorf("failed to update final score for user %d: %w", userID, err)
	}
	return checkAffectedRows(result, ErrUserNotFound)
}
