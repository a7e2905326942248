package domain

import "time"

// CookingSession is a cursor over a recipe's optimized steps.
type CookingSession struct {
	ID          string
	RecipeID    string
	RecipeTitle string
	Steps       []RecipeStep
	Index       int
	Status      SessionStatus
	Degraded    bool // recipe came from the local sample dataset
	StartedAt   time.Time
	UpdatedAt   time.Time
}

// Current returns the step under the cursor.
func (s *CookingSession) Current() *RecipeStep {
	if s.Index < 0 || s.Index >= len(s.Steps) {
		return nil
	}
	return &s.Steps[s.Index]
}

// SessionStatus tracks the lifecycle of a cooking session.
type SessionStatus int

const (
	SessionActive SessionStatus = iota
	SessionCompleted
	SessionAbandoned
)

// String returns a human-readable session status.
func (s SessionStatus) String() string {
	switch s {
	case SessionActive:
		return "active"
	case SessionCompleted:
		return "completed"
	case SessionAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}
