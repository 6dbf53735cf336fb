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
	ErrGameNotFound    = errors.New("game not found")
	ErrGameTeamInvalid = errors.New("game team reference conflict or invalid")
)

// Slot identifiers for SetTeamSlot.
const (
	TeamSlot1 = 1
	TeamSlot2 = 2
)

type GameRepository interface {
	Create(ctx context.Context, exec SQLExecutor, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	List(ctx context.Context) ([]*models.Game, error)
	ListByRegion(ctx context.Context, region string) ([]*models.Game, error)
	ListByRound(ctx context.Context, round int) ([]*models.Game, error)
	ListChildren(ctx context.Context, exec SQLExecutor, gameID int) ([]*models.Game, error)
	UpdateWinner(ctx context.Context, exec SQLExecutor, gameID int, winnerID *int) error
	SetTeamSlot(ctx context.Context, exec SQLExecutor, gameID int, slot int, teamID *int) error
	Count(ctx context.Context) (int, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

// gameColumns joins both team slots so reads come back with names and
// seeds attached.
const gameColumns = `
	SELECT g.id, g.round, g.round_order, g.source_game_1, g.source_game_2,
	       g.team_1_id, g.team_2_id, g.winner_id, g.region, g.game_time,
	       t1.name, t1.seed, t1.region, t1.logo_key,
	       t2.name, t2.seed, t2.region, t2.logo_key
	FROM games g
		LEFT JOIN teams t1 ON g.team_1_id = t1.id
		LEFT JOIN teams t2 ON g.team_2_id = t2.id`

func (r *postgresGameRepository) Create(ctx context.Context, exec SQLExecutor, game *models.Game) error {
	query := `
		INSERT INTO games
			(round, round_order, source_game_1, source_game_2, team_1_id, team_2_id, winner_id, region, game_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err := exec.QueryRowContext(ctx, query,
		game.Round,
		game.RoundOrder,
		game.SourceGame1,
		game.SourceGame2,
		game.Team1ID,
		game.Team2ID,
		game.WinnerID,
		game.Region,
		game.GameTime,
	).Scan(&game.ID)

	return r.handleGameError(err)
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	row := r.db.QueryRowContext(ctx, gameColumns+` WHERE g.id = $1`, id)
	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to scan game by id %d: %w", id, err)
	}
	return game, nil
}

func (r *postgresGameRepository) List(ctx context.Context) ([]*models.Game, error) {
	return r.list(ctx, r.db, gameColumns+` ORDER BY g.round, g.region, g.round_order`)
}

func (r *postgresGameRepository) ListByRegion(ctx context.Context, region string) ([]*models.Game, error) {
	return r.list(ctx, r.db, gameColumns+` WHERE g.region = $1 ORDER BY g.round, g.round_order`, region)
}

func (r *postgresGameRepository) ListByRound(ctx context.Context, round int) ([]*models.Game, error) {
	return r.list(ctx, r.db, gameColumns+` WHERE g.round = $1 ORDER BY g.region, g.round_order`, round)
}

func (r *postgresGameRepository) ListChildren(ctx context.Context, exec SQLExecutor, gameID int) ([]*models.Game, error) {
	return r.list(ctx, exec, gameColumns+` WHERE g.source_game_1 = $1 OR g.source_game_2 = $1 ORDER BY g.id`, gameID)
}

func (r *postgresGameRepository) list(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]*models.Game, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := make([]*models.Game, 0)
	for rows.Next() {
		game, scanErr := scanGame(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", scanErr)
		}
		games = append(games, game)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during game rows iteration: %w", err)
	}
	return games, nil
}

func (r *postgresGameRepository) UpdateWinner(ctx context.Context, exec SQLExecutor, gameID int, winnerID *int) error {
	result, err := exec.ExecContext(ctx, `UPDATE games SET winner_id = $1 WHERE id = $2`, winnerID, gameID)
	if err != nil {
		return r.handleGameError(err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) SetTeamSlot(ctx context.Context, exec SQLExecutor, gameID int, slot int, teamID *int) error {
	var query string
	switch slot {
	case TeamSlot1:
		query = `UPDATE games SET team_1_id = $1 WHERE id = $2`
	case TeamSlot2:
		query = `UPDATE games SET team_2_id = $1 WHERE id = $2`
	default:
		return fmt.Errorf("invalid team slot %d", slot)
	}

	result, err := exec.ExecContext(ctx, query, teamID, gameID)
	if err != nil {
		return r.handleGameError(err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (*models.Game, error) {
	game := &models.Game{}
	var (
		t1Name, t2Name       sql.NullString
		t1Seed, t2Seed       sql.NullInt64
		t1Region, t2Region   sql.NullString
		t1LogoKey, t2LogoKey sql.NullString
	)

	err := row.Scan(
		&game.ID,
		&game.Round,
		&game.RoundOrder,
		&game.SourceGame1,
		&game.SourceGame2,
		&game.Team1ID,
		&game.Team2ID,
		&game.WinnerID,
		&game.Region,
		&game.GameTime,
		&t1Name, &t1Seed, &t1Region, &t1LogoKey,
		&t2Name, &t2Seed, &t2Region, &t2LogoKey,
	)
	if err != nil {
		return nil, err
	}

	game.Team1 = joinedTeam(game.Team1ID, t1Name, t1Seed, t1Region, t1LogoKey)
	game.Team2 = joinedTeam(game.Team2ID, t2Name, t2Seed, t2Region, t2LogoKey)
	return game, nil
}

func joinedTeam(id *int, name sql.NullString, seed sql.NullInt64, region, logoKey sql.NullString) *models.Team {
	if id == nil || !name.Valid {
		return nil
	}
	team := &models.Team{
		ID:     *id,
		Name:   name.String,
		Seed:   int(seed.Int64),
		Region: region.String,
	}
	if logoKey.Valid {
		key := logoKey.String
		team.LogoKey = &key
	}
	return team
}

func (r *postgresGameRepository) handleGameError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Constraint {
		case "games_team_1_id_fkey", "games_team_2_id_fkey", "games_winner_id_fkey":
			return ErrGameTeamInvalid
		}
	}
	return err
}
