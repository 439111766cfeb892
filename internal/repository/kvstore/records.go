// Package kvstore implements the typed repositories on top of a port.KVStore.
// Each entity lives under one fixed key; list entities are stored as a single
// JSON array and changed with atomic read-modify-write updates.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

func decode(raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	return nil
}

// loadRecord reads key into dst. It reports false when the key is unset.
func loadRecord(ctx context.Context, store port.KVStore, key string, dst any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := decode(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func saveRecord(ctx context.Context, store port.KVStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}

// loadList reads the JSON array under key; an unset key is an empty list.
func loadList[T any](ctx context.Context, store port.KVStore, key string) ([]T, error) {
	list := []T{}
	if _, err := loadRecord(ctx, store, key, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// updateList applies fn to the JSON array under key as one atomic update.
func updateList[T any](ctx context.Context, store port.KVStore, key string, fn func([]T) ([]T, error)) error {
	_, err := store.Update(ctx, key, func(current json.RawMessage) (json.RawMessage, error) {
		list := []T{}
		if current != nil {
			if err := decode(current, &list); err != nil {
				return nil, err
			}
		}
		next, err := fn(list)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []T{}
		}
		return json.Marshal(next)
	})
	return err
}
