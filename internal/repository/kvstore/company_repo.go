package kvstore

import (
	"context"
	"fmt"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

type companyRepo struct {
	store port.KVStore
}

// NewCompanyRepo creates a CompanyRepository over store.
func NewCompanyRepo(store port.KVStore) port.CompanyRepository {
	return &companyRepo{store: store}
}

func (r *companyRepo) Get(ctx context.Context) (*domain.CompanyDetails, error) {
	var company domain.CompanyDetails
	found, err := loadRecord(ctx, r.store, port.KeyCompany, &company)
	if err != nil {
		return nil, fmt.Errorf("companyRepo.Get: %w", err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return &company, nil
}

func (r *companyRepo) Save(ctx context.Context, company *domain.CompanyDetails) error {
	if err := saveRecord(ctx, r.store, port.KeyCompany, company); err != nil {
		return fmt.Errorf("companyRepo.Save: %w", err)
	}
	return nil
}
