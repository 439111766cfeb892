package invoicemath

import (
	"fmt"
	"strings"
	"time"

	"gstinvoice/internal/domain"
)

// FiscalYearLabel returns the "YY-YY" label of the fiscal year containing t.
// The year starts in t's calendar year; with aprilCutover, January to March
// belong to the year that started the previous April.
func FiscalYearLabel(t time.Time, aprilCutover bool) string {
	year := t.Year()
	if aprilCutover && t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%02d-%02d", year%100, (year+1)%100)
}

// AdvanceCounter returns the counter that follows current under fiscalYear:
// the next value within the same year, or 1 under a new label. A nil current
// starts a fresh sequence.
func AdvanceCounter(current *domain.InvoiceCounter, fiscalYear string) domain.InvoiceCounter {
	if current != nil && current.FiscalYear == fiscalYear {
		return domain.InvoiceCounter{FiscalYear: fiscalYear, Counter: current.Counter + 1}
	}
	return domain.InvoiceCounter{FiscalYear: fiscalYear, Counter: 1}
}

// FormatInvoiceNumber renders a counter as "<fiscalYear>/<counter>", with the
// counter zero-padded to three digits, e.g. "24-25/007".
func FormatInvoiceNumber(c domain.InvoiceCounter) string {
	return fmt.Sprintf("%s/%03d", c.FiscalYear, c.Counter)
}

// PDFFileName is the download name of an invoice PDF.
func PDFFileName(invoiceNo string) string {
	return "Invoice_" + strings.ReplaceAll(invoiceNo, "/", "_") + ".pdf"
}
