package game

import "errors"

// Sentinel errors surfaced across the presentation boundary.
var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrLevelLocked  = errors.New("level locked")
	ErrNoQuestions  = errors.New("no questions available for level")
	ErrNoSession    = errors.New("no active session")
)
