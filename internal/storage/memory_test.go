package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore(logger.Discard())
	ctx := context.Background()

	steps := []domain.RecipeStep{
		{Number: 1, Instruction: "Whisk the eggs."},
		{Number: 2, Instruction: "Fold in the flour."},
	}
	session := &domain.CookingSession{ID: "pancakes-1", RecipeID: "buttermilk-pancakes", Steps: steps}

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	session.Index = 1
	session.Status = domain.SessionCompleted
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save again: %v", err)
	}

	tests := []struct {
		name      string
		id        string
		wantErr   error
		wantIndex int
	}{
		{"saved session keeps last write", "pancakes-1", nil, 1},
		{"unknown id", "waffles-1", domain.ErrNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Load(ctx, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}
			if got.Index != tt.wantIndex || got.Status != domain.SessionCompleted {
				t.Fatalf("unexpected session %+v", got)
			}
			if got.Current().Instruction != "Fold in the flour." {
				t.Fatalf("unexpected current step %q", got.Current().Instruction)
			}
		})
	}
}
