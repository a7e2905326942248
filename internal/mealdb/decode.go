package mealdb

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// maxIngredients is the number of strIngredientN/strMeasureN pairs per meal.
const maxIngredients = 20

// IngredientImage returns the small thumbnail URL the API hosts for an ingredient.
func IngredientImage(name string) string {
	return "https://www.themealdb.com/images/ingredients/" + url.PathEscape(name) + "-Small.png"
}

func toCard(m meal) domain.RecipeCard {
	return domain.RecipeCard{
		ID:        m.str("idMeal"),
		Title:     m.str("strMeal"),
		Thumbnail: m.str("strMealThumb"),
		Category:  m.str("strCategory"),
		Area:      m.str("strArea"),
	}
}

func toRecipe(m meal) *domain.Recipe {
	r := &domain.Recipe{
		RecipeCard:   toCard(m),
		Tags:         splitTags(m.str("strTags")),
		Instructions: m.str("strInstructions"),
		YouTube:      m.str("strYoutube"),
		Source:       m.str("strSource"),
	}

	for i := 1; i <= maxIngredients; i++ {
		name := m.str(fmt.Sprintf("strIngredient%d", i))
		if name == "" {
			continue
		}
		r.Ingredients = append(r.Ingredients, domain.IngredientMeasure{
			Ingredient: name,
			Measure:    m.str(fmt.Sprintf("strMeasure%d", i)),
		})
	}

	r.Steps = ParseSteps(r.Instructions, r.Ingredients)
	return r
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
