package character

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("character not found")

// Store abstracts character record persistence.
type Store interface {
	List(ctx context.Context) ([]Character, error)
	Get(ctx context.Context, id string) (Character, error)
	Create(ctx context.Context, c Character) (Character, error)
	Update(ctx context.Context, id string, c Character) (Character, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps characters in memory, suitable for local play and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Character
	order []string
}

// NewMemoryStore returns an empty in-memory character store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Character)}
}

// List returns every character in creation order.
func (s *MemoryStore) List(_ context.Context) ([]Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Character, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

// Get retrieves a character by identifier.
func (s *MemoryStore) Get(_ context.Context, id string) (Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.items[id]
	if !ok {
		return Character{}, ErrNotFound
	}
	return c, nil
}

// Create stores a new character, assigning the id and timestamps.
func (s *MemoryStore) Create(_ context.Context, c Character) (Character, error) {
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	s.mu.Lock()
	s.items[c.ID] = c
	s.order = append(s.order, c.ID)
	s.mu.Unlock()

	return c, nil
}

// Update overwrites the mutable fields of an existing character.
func (s *MemoryStore) Update(_ context.Context, id string, c Character) (Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[id]
	if !ok {
		return Character{}, ErrNotFound
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	s.items[id] = c
	return c, nil
}

// Delete removes a character.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
