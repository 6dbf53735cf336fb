package services

import (
	"context"
	"database/sql"
	"sync"

	"bracketpool/models"
	"bracketpool/repositories"
)

func intp(v int) *int { return &v }

// fakeTx satisfies repositories.Tx. The embedded executor stays nil; fake
// repositories never touch it.
type fakeTx struct {
	repositories.SQLExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeTxBeginner struct{}

func (fakeTxBeginner) BeginTx(context.Context, *sql.TxOptions) (repositories.Tx, error) {
	return fakeTx{}, nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Name == user.Name {
			return repositories.ErrUserNameConflict
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Name == name {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateWinnerPick(_ context.Context, userID int, teamID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.WinnerID = intp(teamID)
	return nil
}

func (r *fakeUserRepo) UpdateFinalScore(_ context.Context, userID int, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.FinalScore = intp(score)
	return nil
}

type fakeTeamRepo struct {
	teams map[int]*models.Team
}

func newFakeTeamRepo(teams ...*models.Team) *fakeTeamRepo {
	repo := &fakeTeamRepo{teams: make(map[int]*models.Team)}
	for _, team := range teams {
		repo.teams[team.ID] = team
	}
	return repo
}

func (r *fakeTeamRepo) Create(_ context.Context, _ repositories.SQLExecutor, team *models.Team) error {
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return team, nil
}

func (r *fakeTeamRepo) GetByName(_ context.Context, name string) (*models.Team, error) {
	for _, team := range r.teams {
		if team.Name == name {
			return team, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*models.Team, error) {
	teams := make([]*models.Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team)
	}
	return teams, nil
}

func (r *fakeTeamRepo) NameLookup(_ context.Context) (map[int]string, error) {
	names := make(map[int]string, len(r.teams))
	for id, team := range r.teams {
		names[id] = team.Name
	}
	return names, nil
}

func (r *fakeTeamRepo) UpdateLogoKey(_ context.Context, teamID int, logoKey *string) error {
	team, ok := r.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.LogoKey = logoKey
	return nil
}

func (r *fakeTeamRepo) Count(_ context.Context) (int, error) {
	return len(r.teams), nil
}

type fakePickRepo struct {
	teams *fakeTeamRepo

	mu     sync.Mutex
	byUser map[int][]models.PickInput
	joined []*repositories.PickWithUser
}

func newFakePickRepo(teams *fakeTeamRepo) *fakePickRepo {
	return &fakePickRepo{teams: teams, byUser: make(map[int][]models.PickInput)}
}

func (r *fakePickRepo) MapByUser(_ context.Context, userID int) (map[int]models.PickedTeam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	picks := make(map[int]models.PickedTeam)
	for _, pick := range r.byUser[userID] {
		seed := 0
		if team, ok := r.teams.teams[pick.TeamID]; ok {
			seed = team.Seed
		}
		picks[pick.GameID] = models.PickedTeam{TeamID: pick.TeamID, Seed: seed}
	}
	return picks, nil
}

func (r *fakePickRepo) ReplaceForUser(_ context.Context, userID int, picks []models.PickInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = append([]models.PickInput(nil), picks...)
	return nil
}

func (r *fakePickRepo) DeleteForUser(_ context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUser, userID)
	return nil
}

func (r *fakePickRepo) ListWithUsers(_ context.Context) ([]*repositories.PickWithUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.joined, nil
}

type fakeGameRepo struct {
	games map[int]*models.Game
}

func newFakeGameRepo(games ...*models.Game) *fakeGameRepo {
	repo := &fakeGameRepo{games: make(map[int]*models.Game)}
	for _, g := range games {
		repo.games[g.ID] = g
	}
	return repo
}

func (r *fakeGameRepo) Create(_ context.Context, _ repositories.SQLExecutor, game *models.Game) error {
	r.games[game.ID] = game
	return nil
}

func (r *fakeGameRepo) GetByID(_ context.Context, id int) (*models.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	return g, nil
}

func (r *fakeGameRepo) List(_ context.Context) ([]*models.Game, error) {
	games := make([]*models.Game, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	return games, nil
}

func (r *fakeGameRepo) ListByRegion(_ context.Context, region string) ([]*models.Game, error) {
	var games []*models.Game
	for _, g := range r.games {
		if g.Region == region {
			games = append(games, g)
		}
	}
	return games, nil
}

func (r *fakeGameRepo) ListByRound(_ context.Context, round int) ([]*models.Game, error) {
	var games []*models.Game
	for _, g := range r.games {
		if g.Round == round {
			games = append(games, g)
		}
	}
	return games, nil
}

func (r *fakeGameRepo) ListChildren(_ context.Context, _ repositories.SQLExecutor, gameID int) ([]*models.Game, error) {
	var children []*models.Game
	for _, g := range r.games {
		if (g.SourceGame1 != nil && *g.SourceGame1 == gameID) ||
			(g.SourceGame2 != nil && *g.SourceGame2 == gameID) {
			children = append(children, g)
		}
	}
	return children, nil
}

func (r *fakeGameRepo) UpdateWinner(_ context.Context, _ repositories.SQLExecutor, gameID int, winnerID *int) error {
	g, ok := r.games[gameID]
	if !ok {
		return repositories.ErrGameNotFound
	}
	g.WinnerID = winnerID
	return nil
}

func (r *fakeGameRepo) SetTeamSlot(_ context.Context, _ repositories.SQLExecutor, gameID int, slot int, teamID *int) error {
	g, ok := r.games[gameID]
	if !ok {
		return repositories.ErrGameNotFound
	}
	if slot == repositories.TeamSlot1 {
		g.Team1ID = teamID
	} else {
		g.Team2ID = teamID
	}
	return nil
}

func (r *fakeGameRepo) Count(_ context.Context) (int, error) {
	return len(r.games), nil
}
