package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

type invoiceRepo struct {
	store port.KVStore
}

// NewInvoiceRepo creates an InvoiceRepository over store.
func NewInvoiceRepo(store port.KVStore) port.InvoiceRepository {
	return &invoiceRepo{store: store}
}

func (r *invoiceRepo) List(ctx context.Context) ([]domain.SavedInvoice, error) {
	invoices, err := loadList[domain.SavedInvoice](ctx, r.store, port.KeyInvoices)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedInvoice, error) {
	invoices, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			return &invoices[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *invoiceRepo) Save(ctx context.Context, invoice *domain.SavedInvoice) error {
	err := updateList(ctx, r.store, port.KeyInvoices, func(list []domain.SavedInvoice) ([]domain.SavedInvoice, error) {
		for i := range list {
			if list[i].ID == invoice.ID {
				list[i] = *invoice
				return list, nil
			}
		}
		return append(list, *invoice), nil
	})
	if err != nil {
		return fmt.Errorf("invoiceRepo.Save: %w", err)
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := updateList(ctx, r.store, port.KeyInvoices, func(list []domain.SavedInvoice) ([]domain.SavedInvoice, error) {
		for i := range list {
			if list[i].ID == id {
				return append(list[:i], list[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	return nil
}
