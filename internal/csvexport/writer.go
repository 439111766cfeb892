// Package csvexport writes the saved-invoice register as CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Invoice Type",
	"Customer Name",
	"Customer GSTIN",
	"Customer State",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"P&F",
	"Round Off",
	"Grand Total",
	"Line Item Count",
	"Created At",
	"Updated At",
}

// Writer wraps csv.Writer for exporting saved invoices.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of saved invoices to CSV rows and writes them.
func (w *Writer) WriteInvoices(invoices []domain.SavedInvoice) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceToRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// invoiceToRow computes the totals of one invoice and lays them out in
// column order. Amounts are formatted the way they print on the invoice.
func invoiceToRow(inv *domain.SavedInvoice) []string {
	data := &inv.InvoiceData
	sum := invoicemath.Summarize(data)

	invoiceType := data.InvoiceType
	if invoiceType == "" {
		invoiceType = domain.InvoiceTypeTax
	}

	return []string{
		data.InvoiceNo,
		sum.InvoiceDate,
		strings.ToUpper(string(invoiceType)),
		data.Customer.Name,
		data.Customer.GSTIN,
		data.Customer.State,
		invoicemath.FormatCurrency(sum.Subtotal),
		invoicemath.FormatCurrency(sum.CGST),
		invoicemath.FormatCurrency(sum.SGST),
		invoicemath.FormatCurrency(sum.IGST),
		invoicemath.FormatCurrency(sum.PAndF),
		invoicemath.FormatCurrency(sum.RoundOff),
		invoicemath.FormatCurrency(sum.GrandTotal),
		strconv.Itoa(len(sum.Items)),
		formatTime(inv.CreatedAt),
		formatTime(inv.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns the download name of a register exported on date.
// Format: {sanitized_company_name}_invoices_{YYYY-MM-DD}.csv
func BuildFilename(companyName string, date time.Time) string {
	sanitized := SanitizeFilename(companyName)
	if sanitized == "" {
		sanitized = "gst"
	}
	return fmt.Sprintf("%s_invoices_%s.csv", sanitized, date.Format("2006-01-02"))
}
