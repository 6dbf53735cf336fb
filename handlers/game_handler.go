package handlers

import (
	"net/http"

	"bracketpool/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gameService services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// UpcomingGames lists unresolved games with both teams known, with the
// users who picked each side.
func (h *GameHandler) UpcomingGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.UpcomingGames(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"games": games}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
