package domain

import "errors"

var (
	// ErrPoolTooSmall is returned when a bank is requested with more questions
	// than the authored pool provides. Fatal at startup.
	ErrPoolTooSmall = errors.New("question pool smaller than requested count")
	// ErrQuestionNotFound indicates a position outside the bank's range.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrPoolNotFound indicates the authored question pool could not be loaded.
	ErrPoolNotFound = errors.New("question pool not found")
	// ErrDuplicateTeam is returned when creating a team whose name is taken.
	ErrDuplicateTeam = errors.New("team name already taken")
	// ErrUnknownTeam is returned when an operation references a team identity
	// absent from the roster.
	ErrUnknownTeam = errors.New("unknown team")
	// ErrInvalidOption is returned when an answer index is outside the current
	// question's option range.
	ErrInvalidOption = errors.New("option index out of range")
)
