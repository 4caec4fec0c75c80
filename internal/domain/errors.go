package domain

import "errors"

var (
	// ErrSessionNotFound is returned when no game session exists for a client.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrTierUnknown indicates an unrecognized difficulty tier.
	ErrTierUnknown = errors.New("unknown difficulty tier")
	// ErrInvalidName rejects a hall-of-fame submission whose trimmed name is
	// empty or contains no alphabetic or Hangul character.
	ErrInvalidName = errors.New("player name must contain at least one letter")
	// ErrInvalidGrade rejects a grade level outside 1..6.
	ErrInvalidGrade = errors.New("grade level must be between 1 and 6")
	// ErrAlreadyAnswered indicates a second answer attempt for the same question.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrPhase indicates an operation not allowed in the session's current phase.
	ErrPhase = errors.New("operation not allowed in current phase")
	// ErrNoEntries indicates a hall-of-fame export was requested for an empty list.
	ErrNoEntries = errors.New("hall of fame is empty")
)
