// Package storage provides key-value and cooking-session persistence.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.SessionStore = (*MemorySessionStore)(nil)
	_ domain.KVStore      = (*MemoryKV)(nil)
)

// MemorySessionStore is an in-memory cooking session store. Safe for concurrent access.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.CookingSession
	log      *logger.Logger
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore(log *logger.Logger) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*domain.CookingSession),
		log:      log,
	}
}

// Save persists a session. Overwrites if it already exists.
func (s *MemorySessionStore) Save(ctx context.Context, session *domain.CookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving session %s (recipe=%s, step=%d/%d, status=%s)",
		session.ID, session.RecipeID, session.Index+1, len(session.Steps), session.Status)
	s.sessions[session.ID] = session
	return nil
}

// Load retrieves a session by ID.
func (s *MemorySessionStore) Load(ctx context.Context, id string) (*domain.CookingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		s.log.Debug("session not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return sess, nil
}

// MemoryKV is an in-memory KVStore. Safe for concurrent access.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
	log  *logger.Logger
}

// NewMemoryKV creates an empty in-memory key-value store.
func NewMemoryKV(log *logger.Logger) *MemoryKV {
	return &MemoryKV{
		data: make(map[string]string),
		log:  log,
	}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.Debug("kv set %s (%d bytes)", key, len(value))
	m.data[key] = value
	return nil
}

// Delete removes key. Missing keys are ignored.
func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
