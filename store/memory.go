package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	cerrors "chat-core/errors"
)

// MemoryStore keeps collections in-process. It is the test double for
// BadgerStore and mirrors its behavior, including the JSON round-trip of
// every record so both backends present the same value types.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Record // insertion order per collection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Record)}
}

func (s *MemoryStore) Create(_ context.Context, collection string, rec Record) (Record, error) {
	created := clone(rec)
	if created.ID() == "" {
		created["id"] = uuid.NewString()
	}
	stored, err := roundTrip(created)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], stored)
	return stored, nil
}

func (s *MemoryStore) Find(_ context.Context, collection string, q Query) ([]Record, error) {
	s.mu.RLock()
	recs := make([]Record, len(s.collections[collection]))
	copy(recs, s.collections[collection])
	s.mu.RUnlock()
	return applyQuery(recs, q), nil
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, q Query) (Record, bool, error) {
	q.Limit = 1
	recs, err := s.Find(ctx, collection, q)
	if err != nil {
		return nil, false, err
	}
	if len(recs) == 0 {
		return nil, false, nil
	}
	return recs[0], true, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, partial Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.collections[collection] {
		if rec.ID() != id {
			continue
		}
		updated := clone(rec)
		for k, v := range partial {
			if k == "id" {
				continue
			}
			updated[k] = v
		}
		stored, err := roundTrip(updated)
		if err != nil {
			return nil, err
		}
		s.collections[collection][i] = stored
		return stored, nil
	}
	return nil, fmt.Errorf("%w: record %s/%s", cerrors.ErrNotFound, collection, id)
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.collections[collection]
	for i, rec := range recs {
		if rec.ID() == id {
			s.collections[collection] = append(recs[:i:i], recs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: record %s/%s", cerrors.ErrNotFound, collection, id)
}

func roundTrip(rec Record) (Record, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var out Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
