package invoicemath

import "gstinvoice/internal/domain"

// TaxSummary is the invoice-wide GST aggregation.
type TaxSummary struct {
	Subtotal  float64               `json:"subtotal"`
	TotalCGST float64               `json:"totalCGST"`
	TotalSGST float64               `json:"totalSGST"`
	TotalIGST float64               `json:"totalIGST"`
	Breakdown []domain.TaxBreakdown `json:"taxBreakdown"`
}

// halfRateTax is the CGST (or SGST) share of an intra-state line.
func halfRateTax(item *domain.InvoiceItem) float64 {
	return (item.Amount * item.GSTRate) / 200
}

// Subtotal sums the line amounts.
func Subtotal(items []domain.InvoiceItem) float64 {
	var sum float64
	for i := range items {
		sum += items[i].Amount
	}
	return sum
}

// TotalCGST sums the central tax of all intra-state lines.
func TotalCGST(items []domain.InvoiceItem) float64 {
	var sum float64
	for i := range items {
		if !items[i].IsInterState() {
			sum += halfRateTax(&items[i])
		}
	}
	return sum
}

// TotalSGST sums the state tax of all intra-state lines. It always equals
// TotalCGST.
func TotalSGST(items []domain.InvoiceItem) float64 {
	return TotalCGST(items)
}

// TotalIGST sums the integrated tax of all inter-state lines at the full rate.
func TotalIGST(items []domain.InvoiceItem) float64 {
	var sum float64
	for i := range items {
		item := &items[i]
		if item.IsInterState() {
			sum += (item.Amount * item.GSTRate) / 100
		}
	}
	return sum
}

type breakdownKey struct {
	hsnSac  string
	gstRate float64
}

// TaxBreakdown groups lines by (HSN/SAC, GST rate) in order of first
// occurrence. Every line lands in exactly one group, so the taxable values
// add up to the subtotal.
func TaxBreakdown(items []domain.InvoiceItem) []domain.TaxBreakdown {
	groups := make([]domain.TaxBreakdown, 0)
	index := make(map[breakdownKey]int)

	for i := range items {
		item := &items[i]
		key := breakdownKey{hsnSac: item.HSNSAC, gstRate: item.GSTRate}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, domain.TaxBreakdown{
				HSNSAC:   item.HSNSAC,
				GSTRate:  item.GSTRate,
				CGSTRate: item.GSTRate / 2,
				SGSTRate: item.GSTRate / 2,
			})
		}
		g := &groups[pos]
		g.TaxableValue += item.Amount
		g.CGSTAmount += halfRateTax(item)
		g.SGSTAmount += halfRateTax(item)
	}

	for i := range groups {
		groups[i].TotalTax = groups[i].CGSTAmount + groups[i].SGSTAmount
	}
	return groups
}

// Aggregate computes all invoice-wide tax figures in one call.
func Aggregate(items []domain.InvoiceItem) TaxSummary {
	return TaxSummary{
		Subtotal:  Subtotal(items),
		TotalCGST: TotalCGST(items),
		TotalSGST: TotalSGST(items),
		TotalIGST: TotalIGST(items),
		Breakdown: TaxBreakdown(items),
	}
}

// GrandTotal is the payable amount: subtotal plus all taxes, packing and
// forwarding, and the manual round-off (which may be negative).
func GrandTotal(items []domain.InvoiceItem, pAndF, roundOff float64) float64 {
	subtotal := Subtotal(items)
	cgst := TotalCGST(items)
	sgst := TotalSGST(items)
	igst := TotalIGST(items)
	return subtotal + cgst + sgst + igst + pAndF + roundOff
}
