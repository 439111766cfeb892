package service

import (
	"context"
	"fmt"
	"strings"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// CompanyService manages the issuing company profile.
type CompanyService interface {
	Get(ctx context.Context) (*domain.CompanyDetails, error)
	Save(ctx context.Context, company *domain.CompanyDetails) (*domain.CompanyDetails, error)
}

type companyService struct {
	repo port.CompanyRepository
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(repo port.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Get(ctx context.Context) (*domain.CompanyDetails, error) {
	return s.repo.Get(ctx)
}

func (s *companyService) Save(ctx context.Context, company *domain.CompanyDetails) (*domain.CompanyDetails, error) {
	company.Name = strings.TrimSpace(company.Name)
	company.Address = strings.TrimSpace(company.Address)
	company.GSTIN = strings.ToUpper(strings.TrimSpace(company.GSTIN))
	if company.Name == "" || company.Address == "" || company.GSTIN == "" {
		return nil, fmt.Errorf("%w: company name, address and GSTIN are required", domain.ErrValidation)
	}
	if err := s.repo.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
