package kvstore

import (
	"context"
	"fmt"

	"gstinvoice/internal/port"
)

type sessionRepo struct {
	store port.KVStore
}

// NewSessionRepo creates a SessionRepository over store.
func NewSessionRepo(store port.KVStore) port.SessionRepository {
	return &sessionRepo{store: store}
}

func (r *sessionRepo) IsAuthenticated(ctx context.Context) (bool, error) {
	var flag bool
	if _, err := loadRecord(ctx, r.store, port.KeyAuth, &flag); err != nil {
		return false, fmt.Errorf("sessionRepo.IsAuthenticated: %w", err)
	}
	return flag, nil
}

func (r *sessionRepo) SetAuthenticated(ctx context.Context, authenticated bool) error {
	if err := saveRecord(ctx, r.store, port.KeyAuth, authenticated); err != nil {
		return fmt.Errorf("sessionRepo.SetAuthenticated: %w", err)
	}
	return nil
}
