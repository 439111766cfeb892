// Package memory provides an in-process KVStore for the CLI and tests.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

type kvStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

// NewKVStore creates an empty in-memory KVStore.
func NewKVStore() port.KVStore {
	return &kvStore{data: make(map[string]json.RawMessage)}
}

func (s *kvStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(v), nil
}

func (s *kvStore) Set(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone(value)
	return nil
}

func (s *kvStore) Update(_ context.Context, key string, fn port.UpdateFunc) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(clone(s.data[key]))
	if err != nil {
		return nil, err
	}
	s.data[key] = clone(next)
	return clone(next), nil
}

func (s *kvStore) Ping(context.Context) error { return nil }

func (s *kvStore) Close() error { return nil }

func clone(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}
