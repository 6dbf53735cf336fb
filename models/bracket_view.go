package models

import "time"

// SlotView is one team slot of a projected bracket game. Either the actual
// resolved team or the user's propagated pick fills it; both may be absent
// for deep rounds with no pick. When the game is resolved and the user's
// pick was wrong, the user's pick stays in the slot for display and the
// real occupant is attached as ActualTeamID/ActualName.
type SlotView struct {
	TeamID *int    `json:"team_id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Seed   *int    `json:"seed,omitempty"`

	Correct      *bool   `json:"correct,omitempty"`
	ActualTeamID *int    `json:"actual_team_id,omitempty"`
	ActualName   *string `json:"actual_name,omitempty"`
}

type GameView struct {
	GameID          int       `json:"game_id"`
	Round           int       `json:"round"`
	RoundOrder      int       `json:"round_order"`
	Region          string    `json:"region"`
	GameTime        time.Time `json:"game_time"`
	Team1           SlotView  `json:"team_1"`
	Team2           SlotView  `json:"team_2"`
	PredictedWinner *int      `json:"predicted_winner_id,omitempty"`
	WinnerID        *int      `json:"winner_id,omitempty"`
}

// RegionView maps round number to that round's games in bracket order.
type RegionView map[int][]GameView

// BracketView is the full projected bracket keyed by region display key
// (region name lower-cased, spaces replaced with underscores).
type BracketView map[string]RegionView

// ChampionPick is the user's predicted tournament champion.
type ChampionPick struct {
	TeamID int    `json:"team_id"`
	Seed   int    `json:"seed"`
	Name   string `json:"name"`
}
