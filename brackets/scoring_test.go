package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketpool/models"
)

func TestComputeScoreboardCurrentPoints(t *testing.T) {
	games := miniRegion()
	resolveGame(games, 1, 1)
	resolveGame(games, 2, 3)

	users := []*models.User{{ID: 10, Name: "alice smith"}}
	picks := map[int]map[int]models.PickedTeam{
		10: {
			1: {TeamID: 1, Seed: 1}, // correct: 1 base + 1 seed
			2: {TeamID: 2, Seed: 2}, // wrong
			3: {TeamID: 1, Seed: 1}, // unresolved
		},
	}

	entries := ComputeScoreboard(users, picks, CompletedByID(games), games, DefaultScoring(), miniTeamNames)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Alice Smith", entry.Username)
	assert.Equal(t, 2, entry.CurrentPoints)
	assert.Equal(t, 1, entry.CorrectPicks)
	assert.Equal(t, map[int]int{1: 2}, entry.RoundScores)

	// the round 2 pick survives, so max adds table[2]+seed = 2+1
	assert.Equal(t, 5, entry.MaxPoints)
}

func TestComputeScoreboardUpsetPaysSeed(t *testing.T) {
	games := miniRegion()
	resolveGame(games, 1, 4)

	users := []*models.User{{ID: 10, Name: "alice"}}
	picks := map[int]map[int]models.PickedTeam{
		10: {1: {TeamID: 4, Seed: 4}},
	}

	entries := ComputeScoreboard(users, picks, CompletedByID(games), games, DefaultScoring(), miniTeamNames)
	assert.Equal(t, 5, entries[0].CurrentPoints, "round base 1 plus seed 4")
}

func TestComputeScoreboardEliminatedPickExcludedFromMax(t *testing.T) {
	games := miniRegion()
	resolveGame(games, 1, 4)

	users := []*models.User{{ID: 10, Name: "alice"}}
	picks := map[int]map[int]models.PickedTeam{
		10: {
			1: {TeamID: 1, Seed: 1}, // wrong
			3: {TeamID: 1, Seed: 1}, // team 1 can no longer reach the final
		},
	}

	entries := ComputeScoreboard(users, picks, CompletedByID(games), games, DefaultScoring(), miniTeamNames)
	assert.Equal(t, 0, entries[0].CurrentPoints)
	assert.Equal(t, 0, entries[0].MaxPoints)
}

func TestComputeScoreboardNoPicks(t *testing.T) {
	games := miniRegion()
	users := []*models.User{{ID: 10, Name: "alice"}}

	entries := ComputeScoreboard(users, nil, CompletedByID(games), games, DefaultScoring(), miniTeamNames)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].CurrentPoints)
	assert.Equal(t, 0, entries[0].MaxPoints)
	assert.Nil(t, entries[0].PredictedChampion)
}

func TestComputeScoreboardChampionAndFinalScore(t *testing.T) {
	games := miniRegion()
	users := []*models.User{{ID: 10, Name: "alice", WinnerID: intp(3), FinalScore: intp(145)}}

	entries := ComputeScoreboard(users, nil, CompletedByID(games), games, DefaultScoring(), miniTeamNames)
	require.NotNil(t, entries[0].PredictedChampion)
	assert.Equal(t, "iowa st", *entries[0].PredictedChampion)
	require.NotNil(t, entries[0].PredictedFinalScore)
	assert.Equal(t, 145, *entries[0].PredictedFinalScore)
}

// As results come in one by one, a user's current points may only grow and
// their maximum may only shrink, whatever mix of right picks, wrong picks
// and deep eliminations the sequence contains.
func TestComputeScoreboardMonotonicOverResolutionSequence(t *testing.T) {
	games := eightTeamTree()
	names := map[int]string{1: "one", 4: "four", 5: "five", 8: "eight"}

	users := []*models.User{{ID: 10, Name: "alice"}}
	picks := map[int]map[int]models.PickedTeam{
		10: {
			1: {TeamID: 8, Seed: 8},
			2: {TeamID: 4, Seed: 4},
			5: {TeamID: 8, Seed: 8},
			7: {TeamID: 1, Seed: 1},
		},
	}

	compute := func() models.ScoreboardEntry {
		entries := ComputeScoreboard(users, picks, CompletedByID(games), games, DefaultScoring(), names)
		require.Len(t, entries, 1)
		return entries[0]
	}

	entry := compute()
	assert.Equal(t, 0, entry.CurrentPoints)
	assert.Equal(t, 28, entry.MaxPoints, "all four picks still live")

	steps := []struct {
		gameID, winnerID     int
		wantCurrent, wantMax int
	}{
		// Right opener pick; the final pick on team 1 dies here too, two
		// rounds below its game, so max loses both the loser's ceiling
		// and the deep pick.
		{gameID: 1, winnerID: 8, wantCurrent: 9, wantMax: 24},
		// Wrong opener pick: current holds, max drops.
		{gameID: 2, winnerID: 5, wantCurrent: 9, wantMax: 19},
		// Right semifinal pick.
		{gameID: 5, winnerID: 8, wantCurrent: 19, wantMax: 19},
	}

	prev := entry
	for _, step := range steps {
		resolveGame(games, step.gameID, step.winnerID)
		entry = compute()

		assert.GreaterOrEqual(t, entry.CurrentPoints, prev.CurrentPoints)
		assert.LessOrEqual(t, entry.MaxPoints, prev.MaxPoints)
		assert.Equal(t, step.wantCurrent, entry.CurrentPoints, "game %d", step.gameID)
		assert.Equal(t, step.wantMax, entry.MaxPoints, "game %d", step.gameID)
		prev = entry
	}
}

func TestComputeScoreboardOrdering(t *testing.T) {
	games := miniRegion()
	resolveGame(games, 1, 1)

	users := []*models.User{
		{ID: 1, Name: "zoe"},
		{ID: 2, Name: "bob"},
		{ID: 3, Name: "amy"},
	}
	picks := map[int]map[int]models.PickedTeam{
		1: {1: {TeamID: 1, Seed: 1}},
		// bob and amy both score nothing and must tie-break by name
		2: {1: {TeamID: 4, Seed: 4}},
	}

	entries := ComputeScoreboard(users, picks, CompletedByID(games), games, DefaultScoring(), miniTeamNames)
	require.Len(t, entries, 3)
	assert.Equal(t, "Zoe", entries[0].Username)
	assert.Equal(t, "Amy", entries[1].Username)
	assert.Equal(t, "Bob", entries[2].Username)
}
