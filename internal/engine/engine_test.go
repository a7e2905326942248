package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/steps"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

func setupEngine(t *testing.T, opts ...Option) (*Engine, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	catalog := recipe.NewCatalog(nil, recipe.NewSampleSource(log), log)
	store := storage.NewMemorySessionStore(log)
	eng := New(catalog, store, log, opts...)
	return eng, context.Background()
}

// stubRecipes serves a single fixed recipe.
type stubRecipes struct{ r *domain.Recipe }

func (s stubRecipes) GetRecipeByID(ctx context.Context, id string) domain.Result[*domain.Recipe] {
	return domain.Ok(s.r)
}

func TestStartCooking(t *testing.T) {
	eng, ctx := setupEngine(t)

	tests := []struct {
		name     string
		recipeID string
		wantErr  bool
	}{
		{"sample recipe", "chicken-alfredo", false},
		{"another sample", "buttermilk-pancakes", false},
		{"unknown recipe", "nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := eng.StartCooking(ctx, tt.recipeID)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := uuid.Parse(session.ID); err != nil {
				t.Fatalf("session ID %q is not a UUID: %v", session.ID, err)
			}
			if session.Status != domain.SessionActive {
				t.Fatalf("expected active status, got %s", session.Status)
			}
			if !session.Degraded {
				t.Fatal("offline catalog should mark the session degraded")
			}
			if session.Index != 0 {
				t.Fatalf("expected index 0, got %d", session.Index)
			}
			for i, st := range session.Steps {
				if st.Number != i+1 {
					t.Fatalf("step %d numbered %d", i, st.Number)
				}
			}
		})
	}
}

func TestStartCookingOptimizesSteps(t *testing.T) {
	raw := &domain.Recipe{
		RecipeCard: domain.RecipeCard{ID: "r1", Title: "Tea"},
		Steps: []domain.RecipeStep{
			{Number: 1, Instruction: "Boil water."},
			{Number: 2, Instruction: "Add tea."},
			{Number: 3, Instruction: "Steep."},
		},
	}
	log := logger.New(logger.LevelOff, nil)
	eng := New(stubRecipes{raw}, storage.NewMemorySessionStore(log), log)

	session, err := eng.StartCooking(context.Background(), "r1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(session.Steps) != 2 {
		t.Fatalf("expected 2 optimized steps, got %d", len(session.Steps))
	}
	if session.Steps[0].Instruction != "Boil water. Add tea." {
		t.Fatalf("unexpected merged instruction %q", session.Steps[0].Instruction)
	}
	if session.Degraded {
		t.Fatal("live recipe marked degraded")
	}
	if len(raw.Steps) != 3 {
		t.Fatal("recipe steps were modified")
	}

	tight := New(stubRecipes{raw}, storage.NewMemorySessionStore(log), log,
		WithLimits(steps.Limits{MaxCombinedLength: 5, MaxNoteLength: 5}))
	session, err = tight.StartCooking(context.Background(), "r1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(session.Steps) != 3 {
		t.Fatalf("expected no merging with tight limits, got %d steps", len(session.Steps))
	}
}

func TestStartCookingNoSteps(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	eng := New(stubRecipes{&domain.Recipe{RecipeCard: domain.RecipeCard{ID: "empty"}}},
		storage.NewMemorySessionStore(log), log)

	if _, err := eng.StartCooking(context.Background(), "empty"); !errors.Is(err, domain.ErrNoSteps) {
		t.Fatalf("expected ErrNoSteps, got %v", err)
	}
}

func TestNextThroughCompletion(t *testing.T) {
	eng, ctx := setupEngine(t)

	session, err := eng.StartCooking(ctx, "shakshuka")
	if err != nil {
		t.Fatalf("starting session: %v", err)
	}
	total := len(session.Steps)

	for i := 1; i < total; i++ {
		step, err := eng.Next(ctx, session.ID)
		if err != nil {
			t.Fatalf("next to step %d: %v", i+1, err)
		}
		if step.Number != i+1 {
			t.Fatalf("expected step %d, got %d", i+1, step.Number)
		}
	}

	if _, err := eng.Next(ctx, session.ID); !errors.Is(err, domain.ErrNoMoreSteps) {
		t.Fatalf("expected ErrNoMoreSteps, got %v", err)
	}

	s, err := eng.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.Status != domain.SessionCompleted {
		t.Fatalf("expected completed, got %s", s.Status)
	}

	if _, err := eng.Next(ctx, session.ID); !errors.Is(err, domain.ErrSessionNotActive) {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
}

func TestPreviousStaysOnFirstStep(t *testing.T) {
	eng, ctx := setupEngine(t)

	session, err := eng.StartCooking(ctx, "chicken-alfredo")
	if err != nil {
		t.Fatalf("starting session: %v", err)
	}

	step, err := eng.Previous(ctx, session.ID)
	if err != nil {
		t.Fatalf("previous: %v", err)
	}
	if step.Number != 1 {
		t.Fatalf("expected step 1, got %d", step.Number)
	}

	if _, err := eng.Next(ctx, session.ID); err != nil {
		t.Fatalf("next: %v", err)
	}
	step, err = eng.Previous(ctx, session.ID)
	if err != nil {
		t.Fatalf("previous: %v", err)
	}
	if step.Number != 1 {
		t.Fatalf("expected step 1 after going back, got %d", step.Number)
	}

	current, err := eng.Current(ctx, session.ID)
	if err != nil || current.Number != 1 {
		t.Fatalf("expected current step 1, got %+v (%v)", current, err)
	}
}

func TestAbandon(t *testing.T) {
	eng, ctx := setupEngine(t)

	session, err := eng.StartCooking(ctx, "vegetable-stir-fry")
	if err != nil {
		t.Fatalf("starting session: %v", err)
	}
	if err := eng.Abandon(ctx, session.ID); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if _, err := eng.Previous(ctx, session.ID); !errors.Is(err, domain.ErrSessionNotActive) {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
	if _, err := eng.Current(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
