package port

import (
	"context"

	"github.com/google/uuid"

	"gstinvoice/internal/domain"
)

// CompanyRepository persists the single company profile.
type CompanyRepository interface {
	Get(ctx context.Context) (*domain.CompanyDetails, error)
	Save(ctx context.Context, company *domain.CompanyDetails) error
}

// CustomerRepository persists the customer list.
// Save assigns a new ID to a customer whose ID is not in the list.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.CustomerDetails, error)
	Save(ctx context.Context, customer *domain.CustomerDetails) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepository persists reusable line items.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.SavedItem, error)
	Save(ctx context.Context, item *domain.SavedItem) error
	Delete(ctx context.Context, id string) error
}

// InvoiceRepository persists saved invoices.
type InvoiceRepository interface {
	List(ctx context.Context) ([]domain.SavedInvoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedInvoice, error)
	Save(ctx context.Context, invoice *domain.SavedInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CounterRepository owns the invoice number sequence.
// Advance moves the sequence one step under fiscalYear and returns the new
// value; it never hands out the same value twice.
type CounterRepository interface {
	Advance(ctx context.Context, fiscalYear string) (domain.InvoiceCounter, error)
}

// SessionRepository persists the login gate flag.
type SessionRepository interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	SetAuthenticated(ctx context.Context, authenticated bool) error
}
