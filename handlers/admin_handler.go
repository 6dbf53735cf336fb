package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bracketpool/services"
)

type AdminHandler struct {
	gameService services.GameService
	teamService services.TeamService
}

func NewAdminHandler(gameService services.GameService, teamService services.TeamService) *AdminHandler {
	return &AdminHandler{
		gameService: gameService,
		teamService: teamService,
	}
}

func (h *AdminHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"games": games}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResolveWinner sets or clears (winner_id null) a game's real-world result.
func (h *AdminHandler) ResolveWinner(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil || gameID <= 0 {
		badRequestResponse(w, r, errors.New("invalid game ID"))
		return
	}

	var input struct {
		WinnerID *int `json:"winner_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.ResolveWinner(r.Context(), gameID, input.WinnerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadTeamLogo streams the request body to object storage.
func (h *AdminHandler) UploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil || teamID <= 0 {
		badRequestResponse(w, r, errors.New("invalid team ID"))
		return
	}

	contentType := r.Header.Get("Content-Type")
	team, err := h.teamService.UploadLogo(r.Context(), teamID, contentType, r.Body)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
