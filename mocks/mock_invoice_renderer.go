package mocks

import (
	"github.com/stretchr/testify/mock"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
)

// MockInvoiceRenderer is a mock implementation of port.InvoiceRenderer.
type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(data *domain.InvoiceData, summary *invoicemath.Summary) ([]byte, error) {
	args := m.Called(data, summary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
