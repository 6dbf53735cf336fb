package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketpool/models"
)

func newPickFixture(t *testing.T, lockTime time.Time) (PickService, *fakePickRepo, *fakeUserRepo) {
	t.Helper()

	teamRepo := newFakeTeamRepo(
		&models.Team{ID: 1, Name: "Duke", Seed: 1, Region: models.RegionEast},
		&models.Team{ID: 2, Name: "Houston", Seed: 1, Region: models.RegionMidwest},
	)
	pickRepo := newFakePickRepo(teamRepo)
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(context.Background(), &models.User{Name: "alice", Role: models.RolePlayer}))

	return NewPickService(pickRepo, userRepo, teamRepo, lockTime), pickRepo, userRepo
}

func unlocked() time.Time { return time.Now().Add(time.Hour) }

func TestSubmitPicksRejectedAfterLock(t *testing.T) {
	svc, pickRepo, _ := newPickFixture(t, time.Now().Add(-time.Minute))

	err := svc.SubmitPicks(context.Background(), 1, SubmitPicksInput{
		Picks: []models.PickInput{{GameID: 1, TeamID: 1}},
	})
	assert.ErrorIs(t, err, ErrPicksLocked)
	assert.Empty(t, pickRepo.byUser[1], "nothing may be written after the deadline")
}

func TestSubmitPicksRequiresPicks(t *testing.T) {
	svc, _, _ := newPickFixture(t, unlocked())

	winner := "Duke"
	err := svc.SubmitPicks(context.Background(), 1, SubmitPicksInput{WinnerPick: &winner})
	assert.ErrorIs(t, err, ErrNoPicksSubmitted)
}

func TestSubmitPicksFullSubmission(t *testing.T) {
	svc, pickRepo, userRepo := newPickFixture(t, unlocked())

	winner := "Duke"
	score := "145"
	err := svc.SubmitPicks(context.Background(), 1, SubmitPicksInput{
		Picks:      []models.PickInput{{GameID: 1, TeamID: 1}, {GameID: 2, TeamID: 2}},
		WinnerPick: &winner,
		FinalScore: &score,
	})
	require.NoError(t, err)

	assert.Len(t, pickRepo.byUser[1], 2)

	user, err := userRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, user.WinnerID)
	assert.Equal(t, 1, *user.WinnerID)
	require.NotNil(t, user.FinalScore)
	assert.Equal(t, 145, *user.FinalScore)
}

func TestSubmitPicksInvalidFinalScoreKeepsEarlierParts(t *testing.T) {
	svc, pickRepo, userRepo := newPickFixture(t, unlocked())

	winner := "Duke"
	score := "not-a-number"
	err := svc.SubmitPicks(context.Background(), 1, SubmitPicksInput{
		Picks:      []models.PickInput{{GameID: 1, TeamID: 1}},
		WinnerPick: &winner,
		FinalScore: &score,
	})
	assert.ErrorIs(t, err, ErrFinalScoreInvalid)

	// Picks and champion commit independently of the score.
	assert.Len(t, pickRepo.byUser[1], 1)
	user, _ := userRepo.GetByID(context.Background(), 1)
	require.NotNil(t, user.WinnerID)
	assert.Nil(t, user.FinalScore)
}

func TestSubmitPicksUnknownChampion(t *testing.T) {
	svc, pickRepo, _ := newPickFixture(t, unlocked())

	winner := "Hoopville State"
	err := svc.SubmitPicks(context.Background(), 1, SubmitPicksInput{
		Picks:      []models.PickInput{{GameID: 1, TeamID: 1}},
		WinnerPick: &winner,
	})
	assert.ErrorIs(t, err, ErrChampionTeamNotFound)
	assert.Len(t, pickRepo.byUser[1], 1, "picks were already replaced")
}

func TestResetPicks(t *testing.T) {
	svc, pickRepo, _ := newPickFixture(t, unlocked())

	require.NoError(t, svc.SubmitPicks(context.Background(), 1, SubmitPicksInput{
		Picks: []models.PickInput{{GameID: 1, TeamID: 1}},
	}))
	require.NoError(t, svc.ResetPicks(context.Background(), 1))
	assert.Empty(t, pickRepo.byUser[1])
}

func TestResetPicksRejectedAfterLock(t *testing.T) {
	svc, _, _ := newPickFixture(t, time.Now().Add(-time.Minute))
	assert.ErrorIs(t, svc.ResetPicks(context.Background(), 1), ErrPicksLocked)
}

func TestGetUserPicksCarriesSeeds(t *testing.T) {
	svc, _, _ := newPickFixture(t, unlocked())

	require.NoError(t, svc.SubmitPicks(context.Background(), 1, SubmitPicksInput{
		Picks: []models.PickInput{{GameID: 7, TeamID: 2}},
	}))

	picks, err := svc.GetUserPicks(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.PickedTeam{TeamID: 2, Seed: 1}, picks[7])
}
