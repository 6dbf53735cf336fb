package models

// ScoreboardEntry is one user's row of the computed scoreboard. MaxPoints
// is the theoretical ceiling (current points plus every unresolved pick
// whose team can still reach its game); it is informational and does not
// affect ranking.
type ScoreboardEntry struct {
	UserID              int         `json:"user_id"`
	Username            string      `json:"username"`
	CurrentPoints       int         `json:"current_points"`
	MaxPoints           int         `json:"max_points"`
	CorrectPicks        int         `json:"correct_picks"`
	RoundScores         map[int]int `json:"round_scores"`
	PredictedChampion   *string     `json:"predicted_champion_name,omitempty"`
	PredictedFinalScore *int        `json:"predicted_final_score,omitempty"`
}

// UpcomingGame is a game with both slots known, annotated with the display
// names of the users who picked each side.
type UpcomingGame struct {
	Game         GameView `json:"game"`
	Team1Pickers []string `json:"team_1_pickers"`
	Team2Pickers []string `json:"team_2_pickers"`
}
