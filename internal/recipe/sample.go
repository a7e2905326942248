// Package recipe provides recipe data access: the local sample dataset and
// the fail-soft Catalog that fronts the remote API.
package recipe

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/mealdb"
)

// SampleSource holds the built-in recipes served when the remote API is
// unreachable. Safe for concurrent reads; callers receive copies.
type SampleSource struct {
	mu      sync.RWMutex
	recipes []*domain.Recipe // sorted by title
	log     *logger.Logger
}

// NewSampleSource creates a source preloaded with the built-in recipes.
func NewSampleSource(log *logger.Logger) *SampleSource {
	src := &SampleSource{log: log}
	src.seed()
	return src
}

// Get returns a copy of the recipe with the given ID, or domain.ErrNotFound.
func (s *SampleSource) Get(id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.recipes {
		if r.ID == id {
			return cloneRecipe(r), nil
		}
	}
	s.log.Debug("sample recipe not found: %s", id)
	return nil, domain.ErrNotFound
}

// Search returns recipes whose title contains query, ignoring case.
func (s *SampleSource) Search(query string) []domain.RecipeCard {
	q := strings.ToLower(strings.TrimSpace(query))
	return s.filter(func(r *domain.Recipe) bool {
		return strings.Contains(strings.ToLower(r.Title), q)
	})
}

// ByCategory returns recipes whose category or area equals name, ignoring case.
func (s *SampleSource) ByCategory(name string) []domain.RecipeCard {
	return s.filter(func(r *domain.Recipe) bool {
		return strings.EqualFold(r.Category, name) || strings.EqualFold(r.Area, name)
	})
}

// Random returns the first n recipes. The sample set is deterministic.
func (s *SampleSource) Random(n int) []domain.RecipeCard {
	all := s.filter(func(*domain.Recipe) bool { return true })
	if n < len(all) {
		all = all[:max(n, 0)]
	}
	return all
}

// Categories returns the sorted distinct categories.
func (s *SampleSource) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.recipes {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Strings(out)
	return out
}

func (s *SampleSource) filter(keep func(*domain.Recipe) bool) []domain.RecipeCard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.RecipeCard{}
	for _, r := range s.recipes {
		if keep(r) {
			out = append(out, r.Card())
		}
	}
	return out
}

func cloneRecipe(r *domain.Recipe) *domain.Recipe {
	c := *r
	c.Tags = slices.Clone(r.Tags)
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Steps = make([]domain.RecipeStep, len(r.Steps))
	for i, st := range r.Steps {
		st.Ingredients = slices.Clone(st.Ingredients)
		st.Equipment = slices.Clone(st.Equipment)
		c.Steps[i] = st
	}
	return &c
}

// ── Seed data ────────────────────────────────────────────────────

func (s *SampleSource) seed() {
	s.recipes = []*domain.Recipe{
		chickenAlfredo(),
		vegetableStirFry(),
		shakshuka(),
		buttermilkPancakes(),
	}
	sort.Slice(s.recipes, func(i, j int) bool { return s.recipes[i].Title < s.recipes[j].Title })
	s.log.Debug("seeded %d sample recipes", len(s.recipes))
}

func ing(names ...string) []domain.StepItem {
	out := make([]domain.StepItem, 0, len(names))
	for _, n := range names {
		out = append(out, domain.StepItem{Name: n, Image: mealdb.IngredientImage(n)})
	}
	return out
}

func tools(names ...string) []domain.StepItem {
	out := make([]domain.StepItem, 0, len(names))
	for _, n := range names {
		out = append(out, domain.StepItem{Name: n})
	}
	return out
}

func chickenAlfredo() *domain.Recipe {
	return &domain.Recipe{
		RecipeCard: domain.RecipeCard{
			ID:        "chicken-alfredo",
			Title:     "Chicken Alfredo",
			Thumbnail: "https://www.themealdb.com/images/media/meals/syqypv1486981727.jpg",
			Category:  "Chicken",
			Area:      "Italian",
		},
		Tags: []string{"Pasta", "Comfort"},
		Ingredients: []domain.IngredientMeasure{
			{Ingredient: "Spaghetti", Measure: "250g"},
			{Ingredient: "Chicken Breast", Measure: "2 medium"},
			{Ingredient: "Creme Fraiche", Measure: "1 cup"},
			{Ingredient: "Gruyère", Measure: "1 cup grated"},
			{Ingredient: "Butter", Measure: "3 tbs"},
			{Ingredient: "Garlic", Measure: "4 cloves"},
			{Ingredient: "Olive Oil", Measure: "1 tbs"},
			{Ingredient: "Salt", Measure: "to taste"},
			{Ingredient: "Black Pepper", Measure: "to taste"},
		},
		Steps: []domain.RecipeStep{
			{
				Number:      1,
				Instruction: "Bring a large pot of salted water to a boil for the pasta.",
				Note:        "It should taste like the sea",
				Ingredients: ing("Salt"),
				Equipment:   tools("pot"),
			},
			{
				Number:      2,
				Instruction: "Season the chicken breasts with salt and pepper on both sides.",
				Ingredients: ing("Chicken Breast", "Salt", "Black Pepper"),
			},
			{
				Number:      3,
				Instruction: "Heat olive oil in a skillet over medium-high heat. Sear the chicken for about 6 minutes per side until golden and cooked through, then set aside to rest.",
				Note:        "Internal temperature should reach 74°C / 165°F before it comes off the heat",
				Ingredients: ing("Olive Oil", "Chicken Breast"),
				Equipment:   tools("skillet"),
			},
			{
				Number:      4,
				Instruction: "Cook the spaghetti until al dente. Reserve a cup of pasta water before draining.",
				Ingredients: ing("Spaghetti"),
				Equipment:   tools("pot", "colander"),
			},
			{
				Number:      5,
				Instruction: "Melt the butter in the same skillet and cook the garlic for a minute.",
				Note:        "Do not let the garlic burn",
				Ingredients: ing("Butter", "Garlic"),
				Equipment:   tools("skillet"),
			},
			{
				Number:      6,
				Instruction: "Stir in the creme fraiche and simmer for 3 minutes.",
				Ingredients: ing("Creme Fraiche"),
				Equipment:   tools("Skillet", "spatula"),
			},
			{
				Number:      7,
				Instruction: "Off the heat, stir in the gruyère until smooth, loosening with pasta water if needed.",
				Ingredients: ing("Gruyère"),
			},
			{
				Number:      8,
				Instruction: "Slice the chicken, toss the pasta in the sauce and serve immediately.",
				Ingredients: ing("Chicken Breast", "Spaghetti"),
			},
		},
	}
}

func vegetableStirFry() *domain.Recipe {
	return &domain.Recipe{
		RecipeCard: domain.RecipeCard{
			ID:        "vegetable-stir-fry",
			Title:     "Vegetable Stir Fry",
			Thumbnail: "https://www.themealdb.com/images/media/meals/wuxrtu1483564410.jpg",
			Category:  "Vegetarian",
			Area:      "Chinese",
		},
		Tags: []string{"Vegan", "Quick"},
		Ingredients: []domain.IngredientMeasure{
			{Ingredient: "Red Pepper", Measure: "1 large"},
			{Ingredient: "Broccoli", Measure: "2 cups"},
			{Ingredient: "Carrots", Measure: "1 medium"},
			{Ingredient: "Garlic", Measure: "3 cloves"},
			{Ingredient: "Ginger", Measure: "1 tbs grated"},
			{Ingredient: "Soy Sauce", Measure: "2 tbs"},
			{Ingredient: "Sesame Seed Oil", Measure: "1 tbs"},
			{Ingredient: "Vegetable Oil", Measure: "2 tbs"},
			{Ingredient: "Rice", Measure: "1 cup"},
		},
		Steps: []domain.RecipeStep{
			{
				Number:      1,
				Instruction: "Start the rice first.",
				Ingredients: ing("Rice"),
				Equipment:   tools("saucepan"),
			},
			{
				Number:      2,
				Instruction: "Slice the pepper, cut the broccoli into florets and julienne the carrot.",
				Note:        "Everything cut before the pan goes on",
				Ingredients: ing("Red Pepper", "Broccoli", "Carrots"),
			},
			{
				Number:      3,
				Instruction: "Mix the soy sauce and sesame oil with 2 tablespoons of water.",
				Ingredients: ing("Soy Sauce", "Sesame Seed Oil"),
				Equipment:   tools("bowl"),
			},
			{
				Number:      4,
				Instruction: "Heat the wok on high until it just smokes, then add the vegetable oil.",
				Ingredients: ing("Vegetable Oil"),
				Equipment:   tools("wok"),
			},
			{
				Number:      5,
				Instruction: "Stir-fry the broccoli and carrots for 2 minutes, then add the pepper for 2 more.",
				Note:        "Do not stir constantly; let the vegetables char a little at the edges",
				Ingredients: ing("Broccoli", "carrots", "Red Pepper"),
				Equipment:   tools("wok"),
			},
			{
				Number:      6,
				Instruction: "Add garlic and ginger for 30 seconds, pour in the sauce and toss.",
				Ingredients: ing("Garlic", "Ginger", "Soy Sauce"),
				Equipment:   tools("wok"),
			},
			{
				Number:      7,
				Instruction: "Serve over the rice.",
				Ingredients: ing("Rice"),
			},
		},
	}
}

func shakshuka() *domain.Recipe {
	return &domain.Recipe{
		RecipeCard: domain.RecipeCard{
			ID:        "shakshuka",
			Title:     "Shakshuka",
			Thumbnail: "https://www.themealdb.com/images/media/meals/g373701551450225.jpg",
			Category:  "Breakfast",
			Area:      "Tunisian",
		},
		Tags: []string{"Eggs", "Brunch"},
		Ingredients: []domain.IngredientMeasure{
			{Ingredient: "Olive Oil", Measure: "2 tbs"},
			{Ingredient: "Onion", Measure: "1"},
			{Ingredient: "Red Pepper", Measure: "1"},
			{Ingredient: "Garlic", Measure: "2 cloves"},
			{Ingredient: "Cumin", Measure: "1 tsp"},
			{Ingredient: "Paprika", Measure: "1 tsp"},
			{Ingredient: "Chopped Tomatoes", Measure: "400g"},
			{Ingredient: "Eggs", Measure: "4"},
			{Ingredient: "Parsley", Measure: "handful"},
		},
		Steps: []domain.RecipeStep{
			{
				Number:      1,
				Instruction: "Soften the onion and pepper in olive oil.",
				Ingredients: ing("Olive Oil", "Onion", "Red Pepper"),
				Equipment:   tools("frying pan"),
			},
			{
				Number:      2,
				Instruction: "Add the garlic, cumin and paprika.",
				Ingredients: ing("Garlic", "Cumin", "Paprika"),
			},
			{
				Number:      3,
				Instruction: "Pour in the tomatoes and simmer for 10 minutes.",
				Ingredients: ing("Chopped Tomatoes"),
				Equipment:   tools("frying pan"),
			},
			{
				Number:      4,
				Instruction: "Make four wells and crack an egg into each.",
				Note:        "Cover the pan so the whites set before the yolks harden",
				Ingredients: ing("Eggs"),
			},
			{
				Number:      5,
				Instruction: "Scatter with parsley and serve from the pan.",
				Ingredients: ing("Parsley"),
			},
		},
	}
}

func buttermilkPancakes() *domain.Recipe {
	return &domain.Recipe{
		RecipeCard: domain.RecipeCard{
			ID:        "buttermilk-pancakes",
			Title:     "Buttermilk Pancakes",
			Thumbnail: "https://www.themealdb.com/images/media/meals/rwuyqx1511383174.jpg",
			Category:  "Dessert",
			Area:      "American",
		},
		Tags: []string{"Breakfast", "Sweet"},
		Ingredients: []domain.IngredientMeasure{
			{Ingredient: "Flour", Measure: "200g"},
			{Ingredient: "Baking Powder", Measure: "2 tsp"},
			{Ingredient: "Sugar", Measure: "2 tbs"},
			{Ingredient: "Buttermilk", Measure: "300ml"},
			{Ingredient: "Egg", Measure: "1"},
			{Ingredient: "Butter", Measure: "30g melted"},
			{Ingredient: "Maple Syrup", Measure: "to serve"},
		},
		Steps: []domain.RecipeStep{
			{
				Number:      1,
				Instruction: "Whisk the flour, baking powder and sugar.",
				Ingredients: ing("Flour", "Baking Powder", "Sugar"),
				Equipment:   tools("bowl", "whisk"),
			},
			{
				Number:      2,
				Instruction: "Beat the buttermilk, egg and melted butter together.",
				Ingredients: ing("Buttermilk", "Egg", "Butter"),
				Equipment:   tools("Bowl"),
			},
			{
				Number:      3,
				Instruction: "Fold the wet mix into the dry until just combined.",
				Note:        "Lumps are fine",
				Ingredients: ing("Flour", "Buttermilk"),
				Equipment:   tools("spatula"),
			},
			{
				Number:      4,
				Instruction: "Cook ladlefuls on a buttered pan until bubbles form, then flip.",
				Ingredients: ing("Butter"),
				Equipment:   tools("frying pan", "spatula"),
			},
			{
				Number:      5,
				Instruction: "Serve stacked with maple syrup.",
				Ingredients: ing("Maple Syrup"),
			},
		},
	}
}
