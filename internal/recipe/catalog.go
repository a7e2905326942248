package recipe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// DefaultRandomConcurrency bounds parallel random-recipe requests.
const DefaultRandomConcurrency = 4

// Option configures the Catalog.
type Option func(*Catalog)

// WithRandomConcurrency sets how many random-recipe requests run at once.
func WithRandomConcurrency(n int) Option {
	return func(c *Catalog) {
		if n > 0 {
			c.randomConcurrency = n
		}
	}
}

// Catalog fronts the remote recipe API. Every operation fails soft: when the
// remote call errors, the sample dataset is filtered with the same query
// semantics and returned as a Fallback result.
type Catalog struct {
	remote            domain.RecipeAPI // nil in offline mode
	samples           *SampleSource
	log               *logger.Logger
	randomConcurrency int
}

// NewCatalog creates a catalog. A nil remote serves samples only.
func NewCatalog(remote domain.RecipeAPI, samples *SampleSource, log *logger.Logger, opts ...Option) *Catalog {
	c := &Catalog{
		remote:            remote,
		samples:           samples,
		log:               log,
		randomConcurrency: DefaultRandomConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchRecipes returns recipes whose title matches query.
func (c *Catalog) SearchRecipes(ctx context.Context, query string) domain.Result[[]domain.RecipeCard] {
	if c.remote != nil {
		cards, err := c.remote.Search(ctx, query)
		if err == nil {
			return domain.Ok(cards)
		}
		return fallbackOf(c.log, "search", err, c.samples.Search(query))
	}
	return fallbackOf(c.log, "search", domain.ErrOffline, c.samples.Search(query))
}

// GetRecipeByID returns the full recipe. A recipe unknown to the remote is
// still served from the samples when present there.
func (c *Catalog) GetRecipeByID(ctx context.Context, id string) domain.Result[*domain.Recipe] {
	cause := domain.ErrOffline
	if c.remote != nil {
		r, err := c.remote.Lookup(ctx, id)
		if err == nil {
			return domain.Ok(r)
		}
		cause = err
	}

	r, err := c.samples.Get(id)
	if err != nil {
		if errors.Is(cause, domain.ErrNotFound) {
			return domain.Failure[*domain.Recipe](domain.ErrNotFound)
		}
		c.log.Warn("recipe %s unavailable: %v", id, cause)
		return domain.Failure[*domain.Recipe](fmt.Errorf("recipe %s: %w", id, cause))
	}
	return fallbackOf(c.log, "lookup", cause, r)
}

// GetRandomRecipes returns up to count distinct random recipes. Requests run
// concurrently; any failure switches the whole call to the samples.
func (c *Catalog) GetRandomRecipes(ctx context.Context, count int) domain.Result[[]domain.RecipeCard] {
	if count <= 0 {
		return domain.Ok([]domain.RecipeCard{})
	}
	if c.remote == nil {
		return fallbackOf(c.log, "random", domain.ErrOffline, c.samples.Random(count))
	}

	var (
		mu    sync.Mutex
		seen  = make(map[string]struct{}, count)
		cards = make([]domain.RecipeCard, 0, count)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.randomConcurrency)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			r, err := c.remote.Random(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if _, dup := seen[r.ID]; !dup {
				seen[r.ID] = struct{}{}
				cards = append(cards, r.Card())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fallbackOf(c.log, "random", err, c.samples.Random(count))
	}
	return domain.Ok(cards)
}

// GetCategories returns the category names.
func (c *Catalog) GetCategories(ctx context.Context) domain.Result[[]string] {
	if c.remote != nil {
		cats, err := c.remote.Categories(ctx)
		if err == nil {
			return domain.Ok(cats)
		}
		return fallbackOf(c.log, "categories", err, c.samples.Categories())
	}
	return fallbackOf(c.log, "categories", domain.ErrOffline, c.samples.Categories())
}

// GetRecipesByCategory returns the recipes in category. The sample fallback
// matches category or area exactly.
func (c *Catalog) GetRecipesByCategory(ctx context.Context, category string) domain.Result[[]domain.RecipeCard] {
	if c.remote != nil {
		cards, err := c.remote.FilterByCategory(ctx, category)
		if err == nil {
			return domain.Ok(cards)
		}
		return fallbackOf(c.log, "category", err, c.samples.ByCategory(category))
	}
	return fallbackOf(c.log, "category", domain.ErrOffline, c.samples.ByCategory(category))
}

func fallbackOf[T any](log *logger.Logger, op string, cause error, v T) domain.Result[T] {
	if !errors.Is(cause, domain.ErrOffline) {
		log.Warn("%s: remote failed, serving sample data: %v", op, cause)
	}
	return domain.Fallback(v, cause)
}
