package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrOffline          = errors.New("remote recipe API disabled")
	ErrNoSteps          = errors.New("recipe has no steps")
	ErrNoMoreSteps      = errors.New("no more steps in recipe")
	ErrSessionNotActive = errors.New("session is not active")
)
