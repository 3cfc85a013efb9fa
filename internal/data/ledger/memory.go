package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"hotel-frontdesk/internal/data/entity"
)

// memoryStore keeps the serialized blob in memory. Used by tests and as a
// fallback when no database is configured; it goes through the same
// marshal/unmarshal round-trip as the real store.
type memoryStore struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load(ctx context.Context) ([]entity.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.decode(), nil
}

func (s *memoryStore) Update(ctx context.Context, fn UpdateFunc) ([]entity.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(s.decode())
	if err != nil {
		return nil, err
	}

	if updated == nil {
		updated = []entity.Room{}
	}
	encoded, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}

	s.blob = encoded
	return updated, nil
}

func (s *memoryStore) decode() []entity.Room {
	if len(s.blob) == 0 {
		return []entity.Room{}
	}

	var rooms []entity.Room
	if err := json.Unmarshal(s.blob, &rooms); err != nil {
		return []entity.Room{}
	}
	if rooms == nil {
		rooms = []entity.Room{}
	}
	return rooms
}
