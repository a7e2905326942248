// Package state holds the in-memory recipe state the screens render from.
// RecipesStore is an explicit container: construct it with a Catalog and
// read it through State; nothing in the package is global.
package state

import (
	"context"
	"slices"
	"sync"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Catalog is the recipe data access the store delegates to.
type Catalog interface {
	SearchRecipes(ctx context.Context, query string) domain.Result[[]domain.RecipeCard]
	GetRecipeByID(ctx context.Context, id string) domain.Result[*domain.Recipe]
	GetRandomRecipes(ctx context.Context, count int) domain.Result[[]domain.RecipeCard]
	GetRecipesByCategory(ctx context.Context, category string) domain.Result[[]domain.RecipeCard]
}

// State is a snapshot of the store.
type State struct {
	Recipes       []domain.RecipeCard
	CurrentRecipe *domain.Recipe
	IsLoading     bool
	Error         error
	// Degraded is set when the last fetch was served from sample data.
	Degraded bool
}

// Listener is notified with a snapshot after every change.
type Listener func(State)

// RecipesStore holds fetched recipes plus loading and error state.
// Safe for concurrent use; listeners run outside the lock.
type RecipesStore struct {
	mu        sync.RWMutex
	state     State
	catalog   Catalog
	log       *logger.Logger
	listeners map[int]Listener
	nextID    int
}

// NewRecipesStore creates an empty store backed by catalog.
func NewRecipesStore(catalog Catalog, log *logger.Logger) *RecipesStore {
	return &RecipesStore{
		catalog:   catalog,
		log:       log,
		listeners: make(map[int]Listener),
	}
}

// State returns a copy of the current state.
func (s *RecipesStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Subscribe registers fn for change notifications. Call the returned
// function to unsubscribe.
func (s *RecipesStore) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// FetchRecipes searches for query and replaces the recipe list.
func (s *RecipesStore) FetchRecipes(ctx context.Context, query string) {
	s.begin()
	res := s.catalog.SearchRecipes(ctx, query)
	s.finishList("search", res)
}

// FetchRecipesByCategory replaces the recipe list with a category listing.
func (s *RecipesStore) FetchRecipesByCategory(ctx context.Context, category string) {
	s.begin()
	res := s.catalog.GetRecipesByCategory(ctx, category)
	s.finishList("category", res)
}

// FetchRandomRecipes replaces the recipe list with count random recipes.
func (s *RecipesStore) FetchRandomRecipes(ctx context.Context, count int) {
	s.begin()
	res := s.catalog.GetRandomRecipes(ctx, count)
	s.finishList("random", res)
}

// FetchRecipeByID loads a recipe into CurrentRecipe. On failure
// CurrentRecipe is cleared and Error is set.
func (s *RecipesStore) FetchRecipeByID(ctx context.Context, id string) {
	s.begin()
	res := s.catalog.GetRecipeByID(ctx, id)

	s.update(func(st *State) {
		st.IsLoading = false
		st.Degraded = res.Degraded()
		if res.Failed() {
			st.CurrentRecipe = nil
			st.Error = res.Cause
			s.log.Error("fetch recipe %s: %v", id, res.Cause)
			return
		}
		st.CurrentRecipe = res.Value
	})
}

// ClearError resets Error.
func (s *RecipesStore) ClearError() {
	s.update(func(st *State) { st.Error = nil })
}

func (s *RecipesStore) begin() {
	s.update(func(st *State) {
		st.IsLoading = true
		st.Error = nil
	})
}

func (s *RecipesStore) finishList(op string, res domain.Result[[]domain.RecipeCard]) {
	s.update(func(st *State) {
		st.IsLoading = false
		st.Degraded = res.Degraded()
		if res.Failed() {
			st.Error = res.Cause
			s.log.Error("%s: %v", op, res.Cause)
			return
		}
		st.Recipes = res.Value
	})
}

func (s *RecipesStore) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshot()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

// snapshot copies the state. Caller holds the lock.
func (s *RecipesStore) snapshot() State {
	st := s.state
	st.Recipes = slices.Clone(s.state.Recipes)
	return st
}
