package services

import "errors"

// Shared service errors, mapped onto HTTP statuses in the handlers layer.
var (
	// Validation and business rules
	ErrValidationFailed  = errors.New("validation failed")
	ErrNameRequired      = errors.New("name and password are required")
	ErrNameInvalid       = errors.New("name must contain only letters")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrFinalScoreInvalid = errors.New("final score must be a number")
	ErrWinnerNotInGame   = errors.New("winner must be one of the game's two teams")
	ErrNoPicksSubmitted  = errors.New("no picks were submitted")

	// Conflicts
	ErrUserNameConflict = errors.New("an account with that name already exists")

	// Authentication and authorization
	ErrAuthInvalidCredentials = errors.New("incorrect name or password")

	// Deadline gating: every pick-mutating operation checks this one guard.
	ErrPicksLocked = errors.New("picks are locked: the submission deadline has passed")

	// Entity-specific lookups
	ErrUserNotFound         = errors.New("user not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrGameNotFound         = errors.New("game not found")
	ErrChampionTeamNotFound = errors.New("predicted champion team not found")
)
