package models

// Pick is a user's predicted winner for one game. One row per (user, game);
// submitting new picks replaces all prior rows for that user atomically.
type Pick struct {
	ID              int `json:"id" db:"id"`
	UserID          int `json:"user_id" db:"user_id"`
	GameID          int `json:"game_id" db:"game_id"`
	PredictedWinner int `json:"predicted_winner_id" db:"predicted_winner_id"`
}

// PickedTeam is the per-game projection of a user's pick used by the
// bracket and scoreboard engines: the predicted team plus its seed.
type PickedTeam struct {
	TeamID int `json:"team_id"`
	Seed   int `json:"seed"`
}

// PickInput is one entry of a picks submission.
type PickInput struct {
	GameID int `json:"game_id"`
	TeamID int `json:"team_id"`
}
