package domain

import "strings"

// GSTType distinguishes intra-state (CGST+SGST) from inter-state (IGST) supply.
type GSTType string

const (
	GSTTypeCGSTSGST GSTType = "CGST_SGST"
	GSTTypeIGST     GSTType = "IGST"
)

// InvoiceType is the document title printed on the invoice.
type InvoiceType string

const (
	InvoiceTypeTax      InvoiceType = "TAX"
	InvoiceTypeProforma InvoiceType = "PROFORMA"
)

// IsProforma reports whether the invoice is a proforma invoice.
// Older records stored the type in lower case.
func (t InvoiceType) IsProforma() bool {
	return strings.EqualFold(string(t), string(InvoiceTypeProforma))
}

// Title returns the heading printed at the top of the invoice.
func (t InvoiceType) Title() string {
	if t.IsProforma() {
		return "PROFORMA INVOICE"
	}
	return "TAX INVOICE"
}

// GSTRates is the fixed set of GST slab rates, in percent.
var GSTRates = []float64{0, 5, 12, 18, 28}

// DefaultGSTRate is the rate given to a freshly added invoice line.
const DefaultGSTRate = 18

// IsValidGSTRate reports whether rate is one of GSTRates.
func IsValidGSTRate(rate float64) bool {
	for _, r := range GSTRates {
		if r == rate {
			return true
		}
	}
	return false
}
