package handlers

import (
	"net/http"

	"bracketpool/services"
)

type ScoreboardHandler struct {
	scoreboardService services.ScoreboardService
}

func NewScoreboardHandler(scoreboardService services.ScoreboardService) *ScoreboardHandler {
	return &ScoreboardHandler{scoreboardService: scoreboardService}
}

func (h *ScoreboardHandler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	scoreboard, err := h.scoreboardService.ComputeScoreboard(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"scoreboard": scoreboard}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
