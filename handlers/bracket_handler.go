package handlers

import (
	"net/http"

	"bracketpool/middleware"
	"bracketpool/services"
)

type BracketHandler struct {
	bracketService services.BracketService
	pickService    services.PickService
}

func NewBracketHandler(bracketService services.BracketService, pickService services.PickService) *BracketHandler {
	return &BracketHandler{
		bracketService: bracketService,
		pickService:    pickService,
	}
}

// GetBracket returns the caller's fully projected bracket.
func (h *BracketHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	bracket, err := h.bracketService.GetUserBracket(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, bracket, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) SubmitPicks(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.SubmitPicksInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.pickService.SubmitPicks(r.Context(), userID, input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "Picks saved!"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) ResetPicks(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	if err := h.pickService.ResetPicks(r.Context(), userID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "Picks cleared"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
