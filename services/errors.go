package services

import "errors"

// Shared errors used across services and the HTTP error mapping.
var (
	// Validation and business-rule errors
	ErrTeamNameRequired      = errors.New("team name is required")
	ErrTeamColorRequired     = errors.New("team color is required")
	ErrMemberNameRequired    = errors.New("member name is required")
	ErrMemberInvalidCategory = errors.New("member category must be Adult or Kid")
	ErrEventNameRequired     = errors.New("event name is required")
	ErrEventDateRequired     = errors.New("event date is required")
	ErrPointsNegative        = errors.New("point values must not be negative")
	ErrWinnerRequired        = errors.New("winner team is required")
	ErrRunnerUpSameAsWinner  = errors.New("runner-up team must differ from the winner")
	ErrEventHasResults       = errors.New("event has recorded results and cannot be deleted")

	// Authentication errors
	ErrAuthInvalidCredentials = errors.New("invalid username or password")
	ErrTokenInvalid           = errors.New("invalid token")
	ErrTokenExpired           = errors.New("token has expired")

	// Entity-specific not-found errors
	ErrTeamNotFound   = errors.New("team not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrEventNotFound  = errors.New("event not found")
)
