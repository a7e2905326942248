package domain

import "context"

// RecipeAPI is a remote recipe catalogue. The production implementation
// talks to a TheMealDB-compatible HTTP API.
type RecipeAPI interface {
	Search(ctx context.Context, query string) ([]RecipeCard, error)
	Lookup(ctx context.Context, id string) (*Recipe, error)
	Random(ctx context.Context) (*Recipe, error)
	Categories(ctx context.Context) ([]string, error)
	FilterByCategory(ctx context.Context, category string) ([]RecipeCard, error)
}

// KVStore is a string key-value store. Get returns ErrNotFound for a
// missing key; Delete of a missing key is not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionStore persists cooking sessions.
type SessionStore interface {
	Save(ctx context.Context, session *CookingSession) error
	Load(ctx context.Context, id string) (*CookingSession, error)
}
