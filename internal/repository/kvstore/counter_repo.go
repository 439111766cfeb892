package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/port"
)

type counterRepo struct {
	store port.KVStore
}

// NewCounterRepo creates a CounterRepository over store.
func NewCounterRepo(store port.KVStore) port.CounterRepository {
	return &counterRepo{store: store}
}

// Advance reads, steps and writes the counter inside a single store update,
// so two concurrent callers always receive different values.
func (r *counterRepo) Advance(ctx context.Context, fiscalYear string) (domain.InvoiceCounter, error) {
	var next domain.InvoiceCounter
	_, err := r.store.Update(ctx, port.KeyCounter, func(current json.RawMessage) (json.RawMessage, error) {
		var stored *domain.InvoiceCounter
		if current != nil {
			stored = &domain.InvoiceCounter{}
			if err := decode(current, stored); err != nil {
				return nil, err
			}
		}
		next = invoicemath.AdvanceCounter(stored, fiscalYear)
		return json.Marshal(next)
	})
	if err != nil {
		return domain.InvoiceCounter{}, fmt.Errorf("counterRepo.Advance: %w", err)
	}
	return next, nil
}
