package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// stubCatalog returns canned results. When gate is set, calls block until
// it is closed so tests can observe the loading state.
type stubCatalog struct {
	list    domain.Result[[]domain.RecipeCard]
	recipe  domain.Result[*domain.Recipe]
	gate    chan struct{}
	entered chan struct{}
}

func (c *stubCatalog) wait() {
	if c.entered != nil {
		c.entered <- struct{}{}
	}
	if c.gate != nil {
		<-c.gate
	}
}

func (c *stubCatalog) SearchRecipes(ctx context.Context, query string) domain.Result[[]domain.RecipeCard] {
	c.wait()
	return c.list
}

func (c *stubCatalog) GetRecipeByID(ctx context.Context, id string) domain.Result[*domain.Recipe] {
	c.wait()
	return c.recipe
}

func (c *stubCatalog) GetRandomRecipes(ctx context.Context, count int) domain.Result[[]domain.RecipeCard] {
	c.wait()
	return c.list
}

func (c *stubCatalog) GetRecipesByCategory(ctx context.Context, category string) domain.Result[[]domain.RecipeCard] {
	c.wait()
	return c.list
}

var cards = []domain.RecipeCard{{ID: "1", Title: "Pancakes"}, {ID: "2", Title: "Waffles"}}

func TestFetchRecipesLifecycle(t *testing.T) {
	cat := &stubCatalog{
		list:    domain.Ok(cards),
		gate:    make(chan struct{}),
		entered: make(chan struct{}),
	}
	s := NewRecipesStore(cat, logger.Discard())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchRecipes(context.Background(), "cake")
	}()

	<-cat.entered
	assert.True(t, s.State().IsLoading)
	close(cat.gate)
	wg.Wait()

	st := s.State()
	assert.False(t, st.IsLoading)
	assert.False(t, st.Degraded)
	assert.NoError(t, st.Error)
	assert.Equal(t, cards, st.Recipes)
}

func TestFetchVariantsShareListHandling(t *testing.T) {
	ctx := context.Background()
	cat := &stubCatalog{list: domain.Fallback(cards[:1], errors.New("offline"))}
	s := NewRecipesStore(cat, logger.Discard())

	s.FetchRandomRecipes(ctx, 6)
	assert.True(t, s.State().Degraded)
	assert.Len(t, s.State().Recipes, 1)

	cat.list = domain.Ok(cards)
	s.FetchRecipesByCategory(ctx, "Dessert")
	assert.False(t, s.State().Degraded)
	assert.Len(t, s.State().Recipes, 2)
}

func TestFetchFailureSetsError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	cat := &stubCatalog{list: domain.Ok(cards)}
	s := NewRecipesStore(cat, logger.Discard())

	s.FetchRecipes(ctx, "")
	cat.list = domain.Failure[[]domain.RecipeCard](boom)
	s.FetchRecipes(ctx, "")

	st := s.State()
	assert.ErrorIs(t, st.Error, boom)
	assert.Equal(t, cards, st.Recipes, "previous list is kept on failure")

	s.ClearError()
	assert.NoError(t, s.State().Error)
}

func TestFetchRecipeByID(t *testing.T) {
	ctx := context.Background()
	r := &domain.Recipe{RecipeCard: domain.RecipeCard{ID: "9", Title: "Tart"}}
	cat := &stubCatalog{recipe: domain.Ok(r)}
	s := NewRecipesStore(cat, logger.Discard())

	s.FetchRecipeByID(ctx, "9")
	require.NotNil(t, s.State().CurrentRecipe)
	assert.Equal(t, "Tart", s.State().CurrentRecipe.Title)

	cat.recipe = domain.Failure[*domain.Recipe](domain.ErrNotFound)
	s.FetchRecipeByID(ctx, "10")
	st := s.State()
	assert.Nil(t, st.CurrentRecipe)
	assert.ErrorIs(t, st.Error, domain.ErrNotFound)
	assert.False(t, st.IsLoading)
}

func TestSubscribe(t *testing.T) {
	cat := &stubCatalog{list: domain.Ok(cards)}
	s := NewRecipesStore(cat, logger.Discard())

	var seen []State
	unsubscribe := s.Subscribe(func(st State) { seen = append(seen, st) })

	s.FetchRecipes(context.Background(), "x")
	require.Len(t, seen, 2)
	assert.True(t, seen[0].IsLoading)
	assert.False(t, seen[1].IsLoading)

	unsubscribe()
	s.ClearError()
	assert.Len(t, seen, 2)
}

func TestStateIsACopy(t *testing.T) {
	cat := &stubCatalog{list: domain.Ok([]domain.RecipeCard{{ID: "1", Title: "Pancakes"}})}
	s := NewRecipesStore(cat, logger.Discard())
	s.FetchRecipes(context.Background(), "")

	st := s.State()
	st.Recipes[0].Title = "changed"
	assert.Equal(t, "Pancakes", s.State().Recipes[0].Title)
}
