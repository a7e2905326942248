package recipe

import (
	"testing"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

func TestSampleSourceGet(t *testing.T) {
	src := NewSampleSource(logger.New(logger.LevelOff, nil))

	tests := []struct {
		id      string
		wantErr error
	}{
		{"chicken-alfredo", nil},
		{"vegetable-stir-fry", nil},
		{"nonexistent", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := src.Get(tt.id)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID != tt.id {
				t.Fatalf("expected ID %s, got %s", tt.id, r.ID)
			}
			if len(r.Steps) == 0 {
				t.Fatal("recipe has no steps")
			}
			for i, st := range r.Steps {
				if st.Number != i+1 {
					t.Fatalf("step %d numbered %d", i, st.Number)
				}
			}
		})
	}
}

func TestSampleSourceGetReturnsCopy(t *testing.T) {
	src := NewSampleSource(logger.New(logger.LevelOff, nil))

	r, _ := src.Get("shakshuka")
	r.Title = "changed"
	r.Steps[0].Ingredients[0].Name = "changed"

	again, _ := src.Get("shakshuka")
	if again.Title != "Shakshuka" || again.Steps[0].Ingredients[0].Name == "changed" {
		t.Fatal("sample data was mutated through a returned copy")
	}
}

func TestSampleSourceSearch(t *testing.T) {
	src := NewSampleSource(logger.New(logger.LevelOff, nil))

	tests := []struct {
		query string
		want  int
	}{
		{"chicken", 1},
		{"CHICKEN", 1},
		{"a", 4},
		{"stir", 1},
		{"nonexistent-query-xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := src.Search(tt.query); len(got) != tt.want {
				t.Fatalf("query=%q: expected %d results, got %d", tt.query, tt.want, len(got))
			}
		})
	}
}

func TestSampleSourceByCategory(t *testing.T) {
	src := NewSampleSource(logger.New(logger.LevelOff, nil))

	tests := []struct {
		name string
		want []string
	}{
		{"Vegetarian", []string{"vegetable-stir-fry"}},
		{"italian", []string{"chicken-alfredo"}},
		{"Veg", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := src.ByCategory(tt.name)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d results, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Fatalf("expected %s, got %s", id, got[i].ID)
				}
			}
		})
	}
}

func TestSampleSourceRandomAndCategories(t *testing.T) {
	src := NewSampleSource(logger.New(logger.LevelOff, nil))

	if got := src.Random(2); len(got) != 2 || got[0].Title != "Buttermilk Pancakes" {
		t.Fatalf("unexpected random sample %+v", got)
	}
	if got := src.Random(50); len(got) != 4 {
		t.Fatalf("expected all 4 samples, got %d", len(got))
	}

	cats := src.Categories()
	want := []string{"Breakfast", "Chicken", "Dessert", "Vegetarian"}
	if len(cats) != len(want) {
		t.Fatalf("expected %v, got %v", want, cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, cats)
		}
	}
}
