package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanReachRoundOne(t *testing.T) {
	games := miniRegion()
	byID := GamesByID(games)

	assert.True(t, CanReach(1, 1, byID))
	assert.True(t, CanReach(4, 1, byID))
	assert.False(t, CanReach(2, 1, byID), "team 2 plays the other opener")
}

func TestCanReachThroughUnresolvedSources(t *testing.T) {
	games := miniRegion()
	byID := GamesByID(games)

	// nothing resolved: every team can still reach the regional final
	for teamID := 1; teamID <= 4; teamID++ {
		assert.True(t, CanReach(teamID, 3, byID), "team %d", teamID)
	}
	assert.False(t, CanReach(99, 3, byID))
}

func TestCanReachResolvedSourceDeliversOnlyWinner(t *testing.T) {
	games := miniRegion()
	resolveGame(games, 1, 4)
	byID := GamesByID(games)

	assert.True(t, CanReach(4, 3, byID))
	assert.False(t, CanReach(1, 3, byID), "loser of a resolved source is out")
	assert.True(t, CanReach(2, 3, byID), "other source still open")
}

// A team knocked out two rounds back must be unreachable even though its
// direct ancestor game is still open. This needs the 8-team tree: round 1
// feeds round 2 feeds round 3, and only one round 1 game is resolved.
func TestCanReachDeepElimination(t *testing.T) {
	games := eightTeamTree()
	resolveGame(games, 1, 8)
	byID := GamesByID(games)

	// game 5 and game 7 are both unresolved, yet team 1 cannot reach
	// either because game 1 already eliminated it
	assert.False(t, CanReach(1, 5, byID))
	assert.False(t, CanReach(1, 7, byID))

	assert.True(t, CanReach(8, 7, byID))
	assert.True(t, CanReach(4, 7, byID))
}

func TestAliveSet(t *testing.T) {
	games := miniRegion()
	alive := AliveSet(games)
	require.Len(t, alive, 4)

	resolveGame(games, 1, 1)
	resolveGame(games, 2, 3)
	alive = AliveSet(games)

	assert.True(t, alive[1])
	assert.True(t, alive[3])
	assert.False(t, alive[4])
	assert.False(t, alive[2])
}
