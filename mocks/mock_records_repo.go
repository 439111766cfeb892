package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstinvoice/internal/domain"
)

// MockCompanyRepo is a mock implementation of port.CompanyRepository.
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Get(ctx context.Context) (*domain.CompanyDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDetails), args.Error(1)
}

func (m *MockCompanyRepo) Save(ctx context.Context, company *domain.CompanyDetails) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// MockCustomerRepo is a mock implementation of port.CustomerRepository.
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.CustomerDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerDetails), args.Error(1)
}

func (m *MockCustomerRepo) Save(ctx context.Context, customer *domain.CustomerDetails) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatalogRepo is a mock implementation of port.CatalogRepository.
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) List(ctx context.Context) ([]domain.SavedItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedItem), args.Error(1)
}

func (m *MockCatalogRepo) Save(ctx context.Context, item *domain.SavedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCounterRepo is a mock implementation of port.CounterRepository.
type MockCounterRepo struct {
	mock.Mock
}

func (m *MockCounterRepo) Advance(ctx context.Context, fiscalYear string) (domain.InvoiceCounter, error) {
	args := m.Called(ctx, fiscalYear)
	return args.Get(0).(domain.InvoiceCounter), args.Error(1)
}

// MockSessionRepo is a mock implementation of port.SessionRepository.
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) IsAuthenticated(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepo) SetAuthenticated(ctx context.Context, authenticated bool) error {
	args := m.Called(ctx, authenticated)
	return args.Error(0)
}
