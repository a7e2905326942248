// Package engine implements cooking mode: a session cursor over a recipe's
// optimized steps.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/steps"
)

// RecipeGetter loads full recipes. recipe.Catalog satisfies it.
type RecipeGetter interface {
	GetRecipeByID(ctx context.Context, id string) domain.Result[*domain.Recipe]
}

// Option configures the engine.
type Option func(*Engine)

// WithLimits sets the step merge thresholds.
func WithLimits(l steps.Limits) Option {
	return func(e *Engine) {
		e.limits = l
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine manages cooking sessions. It depends only on interfaces and is
// fully testable with fakes.
type Engine struct {
	recipes RecipeGetter
	store   domain.SessionStore
	log     *logger.Logger
	limits  steps.Limits
	now     func() time.Time
}

// New creates a cooking engine with the given dependencies and options.
func New(recipes RecipeGetter, store domain.SessionStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		recipes: recipes,
		store:   store,
		log:     log,
		limits:  steps.DefaultLimits(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartCooking enters cooking mode for a recipe. Sample recipes served as a
// fallback are accepted and the session is marked Degraded.
func (e *Engine) StartCooking(ctx context.Context, recipeID string) (*domain.CookingSession, error) {
	res := e.recipes.GetRecipeByID(ctx, recipeID)
	recipe, err := res.Unwrap()
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	if len(recipe.Steps) == 0 {
		return nil, domain.ErrNoSteps
	}

	optimized := steps.OptimizeWith(recipe.Steps, e.limits)
	now := e.now()
	session := &domain.CookingSession{
		ID:          uuid.NewString(),
		RecipeID:    recipe.ID,
		RecipeTitle: recipe.Title,
		Steps:       optimized,
		Status:      domain.SessionActive,
		Degraded:    res.Degraded(),
		StartedAt:   now,
		UpdatedAt:   now,
	}

	if err := e.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	e.log.Info("started cooking %q: %d steps condensed to %d (session %s)",
		recipe.Title, len(recipe.Steps), len(optimized), session.ID)
	return session, nil
}

// Get returns a session by ID.
func (e *Engine) Get(ctx context.Context, sessionID string) (*domain.CookingSession, error) {
	session, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return session, nil
}

// Current returns the step under the cursor.
func (e *Engine) Current(ctx context.Context, sessionID string) (*domain.RecipeStep, error) {
	session, err := e.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	step := session.Current()
	if step == nil {
		return nil, domain.ErrNoMoreSteps
	}
	return step, nil
}

// Next moves to the following step. Moving past the last step completes
// the session and returns domain.ErrNoMoreSteps.
func (e *Engine) Next(ctx context.Context, sessionID string) (*domain.RecipeStep, error) {
	session, err := e.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Index+1 >= len(session.Steps) {
		session.Status = domain.SessionCompleted
		if err := e.save(ctx, session); err != nil {
			return nil, err
		}
		e.log.Info("session %s completed", sessionID)
		return nil, domain.ErrNoMoreSteps
	}

	session.Index++
	if err := e.save(ctx, session); err != nil {
		return nil, err
	}
	e.log.Debug("session %s advanced to step %d/%d", sessionID, session.Index+1, len(session.Steps))
	return session.Current(), nil
}

// Previous moves back one step. On the first step it stays put.
func (e *Engine) Previous(ctx context.Context, sessionID string) (*domain.RecipeStep, error) {
	session, err := e.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Index > 0 {
		session.Index--
		if err := e.save(ctx, session); err != nil {
			return nil, err
		}
	}
	return session.Current(), nil
}

// Abandon ends a session before its last step.
func (e *Engine) Abandon(ctx context.Context, sessionID string) error {
	session, err := e.activeSession(ctx, sessionID)
	if err != nil {
		return err
	}
	session.Status = domain.SessionAbandoned
	if err := e.save(ctx, session); err != nil {
		return err
	}
	e.log.Info("session %s abandoned at step %d/%d", sessionID, session.Index+1, len(session.Steps))
	return nil
}

func (e *Engine) activeSession(ctx context.Context, sessionID string) (*domain.CookingSession, error) {
	session, err := e.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionActive {
		return nil, domain.ErrSessionNotActive
	}
	return session, nil
}

func (e *Engine) save(ctx context.Context, session *domain.CookingSession) error {
	session.UpdatedAt = e.now()
	if err := e.store.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
