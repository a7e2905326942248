// Package favorites persists the user's saved recipes in a key-value store.
//
// The whole list lives under one key as a JSON array. Every mutation reads
// the list, modifies it and writes it back in full, so two concurrent
// mutations can lose one of the updates: the last writer's snapshot wins.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// DefaultKey is the storage key holding the favorites list.
const DefaultKey = "favorites"

// Option configures the Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock overrides the time source used to stamp SavedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store reads and writes the favorites list.
type Store struct {
	kv  domain.KVStore
	key string
	now func() time.Time
	log *logger.Logger
}

// NewStore creates a favorites store on top of kv.
func NewStore(kv domain.KVStore, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		key: DefaultKey,
		now: time.Now,
		log: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the saved favorites, oldest first. A missing, unreadable or
// corrupt list degrades to an empty one.
func (s *Store) Load(ctx context.Context) []domain.FavoriteRecipe {
	favs, err := s.load(ctx)
	if err != nil {
		s.log.Warn("favorites: read failed, using empty list: %v", err)
		return []domain.FavoriteRecipe{}
	}
	return favs
}

// load reads the list for a mutation. Read failures are returned so the
// caller never writes back a list it could not see; a corrupt list is
// reported as empty and replaced by the next write.
func (s *Store) load(ctx context.Context) ([]domain.FavoriteRecipe, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.FavoriteRecipe{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("favorites: read: %w", err)
	}

	var favs []domain.FavoriteRecipe
	if err := json.Unmarshal([]byte(raw), &favs); err != nil {
		s.log.Warn("favorites: stored list is corrupt, using empty list: %v", err)
		return []domain.FavoriteRecipe{}, nil
	}
	if favs == nil {
		favs = []domain.FavoriteRecipe{}
	}
	return favs, nil
}

// Add saves card, stamping SavedAt with the current time. Adding a recipe
// that is already saved leaves the list unchanged.
func (s *Store) Add(ctx context.Context, card domain.RecipeCard) error {
	favs, err := s.load(ctx)
	if err != nil {
		return err
	}
	if indexOf(favs, card.ID) >= 0 {
		s.log.Debug("favorites: %s already saved", card.ID)
		return nil
	}

	favs = append(favs, domain.FavoriteRecipe{RecipeCard: card, SavedAt: s.now().UTC()})
	if err := s.save(ctx, favs); err != nil {
		return err
	}
	s.log.Info("favorites: saved %q", card.Title)
	return nil
}

// Remove deletes the recipe with the given id. Unknown ids are ignored.
func (s *Store) Remove(ctx context.Context, id string) error {
	favs, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(favs, id)
	if i < 0 {
		return nil
	}
	favs = append(favs[:i], favs[i+1:]...)
	if err := s.save(ctx, favs); err != nil {
		return err
	}
	s.log.Info("favorites: removed %s", id)
	return nil
}

// Toggle adds card when absent and removes it when present. It reports
// whether the recipe is a favorite afterwards.
func (s *Store) Toggle(ctx context.Context, card domain.RecipeCard) (bool, error) {
	favs, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if indexOf(favs, card.ID) >= 0 {
		return false, s.Remove(ctx, card.ID)
	}
	return true, s.Add(ctx, card)
}

// IsFavorite reports whether id is saved.
func (s *Store) IsFavorite(ctx context.Context, id string) bool {
	return indexOf(s.Load(ctx), id) >= 0
}

// Clear deletes the whole list.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("favorites: clear: %w", err)
	}
	s.log.Info("favorites: cleared")
	return nil
}

func (s *Store) save(ctx context.Context, favs []domain.FavoriteRecipe) error {
	data, err := json.Marshal(favs)
	if err != nil {
		return fmt.Errorf("favorites: encode: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("favorites: save: %w", err)
	}
	return nil
}

func indexOf(favs []domain.FavoriteRecipe, id string) int {
	for i, f := range favs {
		if f.ID == id {
			return i
		}
	}
	return -1
}
