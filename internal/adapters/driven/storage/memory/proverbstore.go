// Package memory provides in-memory driven adapters, used by tests and
// as a stand-in store when no remote collection is configured.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/ports/driven"
)

// Ensure ProverbStore implements the interface.
var _ driven.ProverbStore = (*ProverbStore)(nil)

// ProverbStore is an in-memory implementation of driven.ProverbStore.
// Records keep their insertion order, mirroring how the remote store
// streams documents back.
type ProverbStore struct {
	mu       sync.RWMutex
	proverbs map[string]domain.Proverb
	order    []string
}

// NewProverbStore creates a new in-memory proverb store.
func NewProverbStore() *ProverbStore {
	return &ProverbStore{
		proverbs: make(map[string]domain.Proverb),
	}
}

// List returns all records in insertion order.
func (s *ProverbStore) List(_ context.Context) ([]domain.Proverb, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Proverb, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.proverbs[id])
	}
	return result, nil
}

// Add stores a new record under a generated identifier.
func (s *ProverbStore) Add(_ context.Context, p domain.Proverb) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	p.ID = id
	s.proverbs[id] = p
	s.order = append(s.order, id)
	return id, nil
}

// Set overwrites an existing record in full.
func (s *ProverbStore) Set(_ context.Context, id string, p domain.Proverb) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.proverbs[id]; !ok {
		return domain.ErrNotFound
	}
	p.ID = id
	s.proverbs[id] = p
	return nil
}

// Delete removes a record.
func (s *ProverbStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.proverbs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.proverbs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
