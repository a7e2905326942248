package display

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

func TestRenderCards(t *testing.T) {
	cards := []domain.RecipeCard{
		{ID: "1", Title: "Pancakes", Category: "Dessert", Area: "American"},
		{ID: "2", Title: "Shakshuka"},
	}

	out := RenderCards(cards, func(id string) bool { return id == "2" })
	if !strings.Contains(out, "Pancakes") || !strings.Contains(out, "Dessert · American") {
		t.Fatalf("missing card details:\n%s", out)
	}
	if strings.Count(out, "♥") != 1 {
		t.Fatalf("expected one favorite marker:\n%s", out)
	}

	if !strings.Contains(RenderCards(nil, nil), "No recipes") {
		t.Fatal("expected empty-list message")
	}
}

func TestRenderRecipe(t *testing.T) {
	r := &domain.Recipe{
		RecipeCard:  domain.RecipeCard{ID: "1", Title: "Pancakes", Category: "Dessert"},
		Tags:        []string{"Sweet"},
		Ingredients: []domain.IngredientMeasure{{Ingredient: "Flour", Measure: "200g"}},
		Steps:       []domain.RecipeStep{{Number: 1, Instruction: "Whisk.", Note: "Lumps are fine"}},
	}

	out := RenderRecipe(r, 80)
	for _, want := range []string{"Pancakes", "Flour", "200g", "Whisk.", "Lumps are fine", "Sweet"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderFavoritesAndNotice(t *testing.T) {
	favs := []domain.FavoriteRecipe{{
		RecipeCard: domain.RecipeCard{ID: "1", Title: "Pancakes"},
		SavedAt:    time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
	}}
	if out := RenderFavorites(favs); !strings.Contains(out, "Pancakes") || !strings.Contains(out, "saved") {
		t.Fatalf("unexpected favorites render:\n%s", out)
	}

	if RenderNotice(domain.OutcomeOK, nil) != "" {
		t.Fatal("live data needs no notice")
	}
	if out := RenderNotice(domain.OutcomeFallback, errors.New("timeout")); !strings.Contains(out, "sample") {
		t.Fatalf("unexpected fallback notice %q", out)
	}
}
