package kvstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

type customerRepo struct {
	store port.KVStore
}

// NewCustomerRepo creates a CustomerRepository over store.
func NewCustomerRepo(store port.KVStore) port.CustomerRepository {
	return &customerRepo{store: store}
}

func (r *customerRepo) List(ctx context.Context) ([]domain.CustomerDetails, error) {
	customers, err := loadList[domain.CustomerDetails](ctx, r.store, port.KeyCustomers)
	if err != nil {
		return nil, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, nil
}

func (r *customerRepo) Save(ctx context.Context, customer *domain.CustomerDetails) error {
	err := updateList(ctx, r.store, port.KeyCustomers, func(list []domain.CustomerDetails) ([]domain.CustomerDetails, error) {
		for i := range list {
			if customer.ID != "" && list[i].ID == customer.ID {
				list[i] = *customer
				return list, nil
			}
		}
		customer.ID = uuid.NewString()
		return append(list, *customer), nil
	})
	if err != nil {
		return fmt.Errorf("customerRepo.Save: %w", err)
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id string) error {
	err := updateList(ctx, r.store, port.KeyCustomers, func(list []domain.CustomerDetails) ([]domain.CustomerDetails, error) {
		kept := list[:0]
		for _, c := range list {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		return kept, nil
	})
	if err != nil {
		return fmt.Errorf("customerRepo.Delete: %w", err)
	}
	return nil
}
