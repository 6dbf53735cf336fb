package models

import "time"

// Region names in bracket order. Rounds 1-4 play inside the four seeded
// regions, round 5 is the two Final Four buckets, round 6 the championship.
const (
	RegionSouth          = "South"
	RegionMidwest        = "Midwest"
	RegionWest           = "West"
	RegionEast           = "East"
	RegionFinalFourLeft  = "Final Four Left"
	RegionFinalFourRight = "Final Four Right"
	RegionChampionship   = "Championship"
)

var Regions = []string{
	RegionSouth,
	RegionMidwest,
	RegionWest,
	RegionEast,
	RegionFinalFourLeft,
	RegionFinalFourRight,
	RegionChampionship,
}

const FinalRound = 6

// Game is one node of the bracket tree. Round 1 games have no source games;
// every later game is fed by exactly two. Team slots stay nil until seeded
// (round 1) or populated by winner propagation, and WinnerID stays nil until
// an admin resolves the real-world result.
type Game struct {
	ID          int       `json:"id" db:"id"`
	Round       int       `json:"round" db:"round"`
	RoundOrder  int       `json:"round_order" db:"round_order"`
	SourceGame1 *int      `json:"source_game_1,omitempty" db:"source_game_1"`
	SourceGame2 *int      `json:"source_game_2,omitempty" db:"source_game_2"`
	Team1ID     *int      `json:"team_1_id,omitempty" db:"team_1_id"`
	Team2ID     *int      `json:"team_2_id,omitempty" db:"team_2_id"`
	WinnerID    *int      `json:"winner_id,omitempty" db:"winner_id"`
	Region      string    `json:"region" db:"region"`
	GameTime    time.Time `json:"game_time" db:"game_time"`

	// Joined team details, populated by the repository on reads.
	Team1 *Team `json:"team_1,omitempty" db:"-"`
	Team2 *Team `json:"team_2,omitempty" db:"-"`
}

func (g *Game) Resolved() bool {
	return g.WinnerID != nil
}

// HasTeam reports whether teamID currently occupies one of the game's slots.
func (g *Game) HasTeam(teamID int) bool {
	if g.Team1ID != nil && *g.Team1ID == teamID {
		return true
	}
	if g.Team2ID != nil && *g.Team2ID == teamID {
		return true
	}
	return false
}

// LoserID returns the resolved loser's team id, or nil when the game is
// unresolved or a slot is still empty.
func (g *Game) LoserID() *int {
	if g.WinnerID == nil || g.Team1ID == nil || g.Team2ID == nil {
		return nil
	}
	if *g.WinnerID == *g.Team1ID {
		return g.Team2ID
	}
	return g.Team1ID
}
