package port

import (
	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
)

// InvoiceRenderer lays an invoice out as a printable document.
type InvoiceRenderer interface {
	Render(data *domain.InvoiceData, summary *invoicemath.Summary) ([]byte, error)
}
