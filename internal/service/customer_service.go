package service

import (
	"context"
	"fmt"
	"strings"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// CustomerService manages the customer list.
type CustomerService interface {
	List(ctx context.Context) ([]domain.CustomerDetails, error)
	Save(ctx context.Context, customer *domain.CustomerDetails) (*domain.CustomerDetails, error)
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) List(ctx context.Context) ([]domain.CustomerDetails, error) {
	return s.repo.List(ctx)
}

func (s *customerService) Save(ctx context.Context, customer *domain.CustomerDetails) (*domain.CustomerDetails, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.GSTIN = strings.ToUpper(strings.TrimSpace(customer.GSTIN))
	if customer.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
