// Package domain defines the core types and interfaces for the recipe browser.
// All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// RecipeCard is the lightweight view of a recipe used by lists and favorites.
type RecipeCard struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
	Area      string `json:"area,omitempty" yaml:"area,omitempty"`
}

// Recipe is a complete recipe: metadata, ingredient list and steps.
type Recipe struct {
	RecipeCard
	Tags         []string
	Instructions string // raw instruction text as served by the API
	Steps        []RecipeStep
	Ingredients  []IngredientMeasure
	YouTube      string
	Source       string
}

// Card returns the list view of the recipe.
func (r *Recipe) Card() RecipeCard {
	return r.RecipeCard
}

// IngredientMeasure pairs an ingredient with its human-style measure ("2 cups").
type IngredientMeasure struct {
	Ingredient string
	Measure    string
}

// StepItem is an ingredient or piece of equipment referenced by a step.
type StepItem struct {
	Name  string
	Image string
}

// RecipeStep is one instruction unit in a recipe's procedure.
type RecipeStep struct {
	Number      int // 1-based position
	Instruction string
	Note        string // empty when the step carries no note
	Ingredients []StepItem
	Equipment   []StepItem
}

// FavoriteRecipe is a recipe reference saved by the user.
type FavoriteRecipe struct {
	RecipeCard `yaml:",inline"`
	SavedAt    time.Time `json:"savedAt" yaml:"savedAt"`
}
