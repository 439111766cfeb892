package invoicemath_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestFiscalYearLabel(t *testing.T) {
	assert.Equal(t, "24-25", invoicemath.FiscalYearLabel(date(2024, time.June, 1), false))
	assert.Equal(t, "24-25", invoicemath.FiscalYearLabel(date(2024, time.February, 1), false))
	assert.Equal(t, "99-00", invoicemath.FiscalYearLabel(date(2099, time.May, 1), false))
	assert.Equal(t, "05-06", invoicemath.FiscalYearLabel(date(2005, time.January, 1), false))

	assert.Equal(t, "23-24", invoicemath.FiscalYearLabel(date(2024, time.March, 31), true))
	assert.Equal(t, "24-25", invoicemath.FiscalYearLabel(date(2024, time.April, 1), true))
}

func TestAdvanceCounter(t *testing.T) {
	first := invoicemath.AdvanceCounter(nil, "24-25")
	assert.Equal(t, domain.InvoiceCounter{FiscalYear: "24-25", Counter: 1}, first)

	next := invoicemath.AdvanceCounter(&first, "24-25")
	assert.Equal(t, 2, next.Counter)

	reset := invoicemath.AdvanceCounter(&domain.InvoiceCounter{FiscalYear: "24-25", Counter: 41}, "25-26")
	assert.Equal(t, domain.InvoiceCounter{FiscalYear: "25-26", Counter: 1}, reset)
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "24-25/007", invoicemath.FormatInvoiceNumber(domain.InvoiceCounter{FiscalYear: "24-25", Counter: 7}))
	assert.Equal(t, "24-25/123", invoicemath.FormatInvoiceNumber(domain.InvoiceCounter{FiscalYear: "24-25", Counter: 123}))
	assert.Equal(t, "24-25/1000", invoicemath.FormatInvoiceNumber(domain.InvoiceCounter{FiscalYear: "24-25", Counter: 1000}))
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "Invoice_24-25_007.pdf", invoicemath.PDFFileName("24-25/007"))
	assert.Equal(t, "Invoice_A_B_C.pdf", invoicemath.PDFFileName("A/B/C"))
	assert.Equal(t, "Invoice_INV9.pdf", invoicemath.PDFFileName("INV9"))
}
