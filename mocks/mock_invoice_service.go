package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Preview(data *domain.InvoiceData) invoicemath.Summary {
	args := m.Called(data)
	return args.Get(0).(invoicemath.Summary)
}

func (m *MockInvoiceService) Save(ctx context.Context, id *uuid.UUID, data domain.InvoiceData) (*domain.SavedInvoice, error) {
	args := m.Called(ctx, id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedInvoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, search string) ([]domain.SavedInvoice, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedInvoice), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedInvoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceService) RenderPDF(ctx context.Context, id uuid.UUID) (*service.RenderedPDF, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedPDF), args.Error(1)
}

func (m *MockInvoiceService) RenderDraftPDF(data *domain.InvoiceData) (*service.RenderedPDF, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedPDF), args.Error(1)
}

func (m *MockInvoiceService) Send(ctx context.Context, id uuid.UUID) (*service.SendResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SendResult), args.Error(1)
}

// ExportCSV writes the second mock argument, when it is a string, to w.
func (m *MockInvoiceService) ExportCSV(ctx context.Context, w io.Writer) (string, error) {
	args := m.Called(ctx, w)
	if body, ok := args.Get(1).(string); ok {
		_, _ = io.WriteString(w, body)
	}
	return args.String(0), args.Error(2)
}
