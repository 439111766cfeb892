package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstinvoice/internal/domain"
)

// MockCompanyService is a mock implementation of service.CompanyService.
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) Get(ctx context.Context) (*domain.CompanyDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDetails), args.Error(1)
}

func (m *MockCompanyService) Save(ctx context.Context, company *domain.CompanyDetails) (*domain.CompanyDetails, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDetails), args.Error(1)
}

// MockCustomerService is a mock implementation of service.CustomerService.
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context) ([]domain.CustomerDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerDetails), args.Error(1)
}

func (m *MockCustomerService) Save(ctx context.Context, customer *domain.CustomerDetails) (*domain.CustomerDetails, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerDetails), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context) ([]domain.SavedItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedItem), args.Error(1)
}

func (m *MockCatalogService) Save(ctx context.Context, item *domain.SavedItem) (*domain.SavedItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedItem), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) NewLine(ctx context.Context, catalogID string, position int) (*domain.InvoiceItem, error) {
	args := m.Called(ctx, catalogID, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceItem), args.Error(1)
}

// MockNumberingService is a mock implementation of service.NumberingService.
type MockNumberingService struct {
	mock.Mock
}

func (m *MockNumberingService) Next(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
