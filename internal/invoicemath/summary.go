package invoicemath

import "gstinvoice/internal/domain"

// Summary is everything a rendered invoice shows besides the raw input.
type Summary struct {
	Title         string                `json:"title"`
	InvoiceDate   string                `json:"invoiceDate"`
	Items         []domain.InvoiceItem  `json:"items"`
	Subtotal      float64               `json:"subtotal"`
	CGST          float64               `json:"cgst"`
	SGST          float64               `json:"sgst"`
	IGST          float64               `json:"igst"`
	PAndF         float64               `json:"pAndF"`
	RoundOff      float64               `json:"roundOff"`
	GrandTotal    float64               `json:"grandTotal"`
	TotalTax      float64               `json:"totalTax"`
	Breakdown     []domain.TaxBreakdown `json:"taxBreakdown"`
	AmountInWords string                `json:"amountInWords"`
	TaxInWords    string                `json:"taxInWords"`
}

// Summarize normalizes the items of data and computes the totals, breakdown
// and words shown on the invoice.
func Summarize(data *domain.InvoiceData) Summary {
	items := NormalizeItems(data.Items)
	tax := Aggregate(items)
	grand := GrandTotal(items, data.PAndF, data.RoundOff)
	totalTax := tax.TotalCGST + tax.TotalSGST + tax.TotalIGST

	return Summary{
		Title:         data.InvoiceType.Title(),
		InvoiceDate:   FormatDate(data.InvoiceDate),
		Items:         items,
		Subtotal:      tax.Subtotal,
		CGST:          tax.TotalCGST,
		SGST:          tax.TotalSGST,
		IGST:          tax.TotalIGST,
		PAndF:         data.PAndF,
		RoundOff:      data.RoundOff,
		GrandTotal:    grand,
		TotalTax:      totalTax,
		Breakdown:     tax.Breakdown,
		AmountInWords: NumberToWords(grand),
		TaxInWords:    NumberToWords(totalTax),
	}
}
