// Package invoicemath holds the pure invoice arithmetic: line amounts, GST
// aggregation, grand totals, money and date formatting, amount-in-words and
// invoice numbering.
//
// Amounts are float64 and are never rounded during computation; rounding only
// happens when a value is formatted for display or spelled out in words.
package invoicemath

import "gstinvoice/internal/domain"

// LineItemAmount returns the extended amount of a line.
func LineItemAmount(quantity, rate float64) float64 {
	return quantity * rate
}

// NormalizeItems returns a copy of items with every amount recomputed from
// quantity and rate, and serial numbers renumbered 1..N in order.
func NormalizeItems(items []domain.InvoiceItem) []domain.InvoiceItem {
	out := make([]domain.InvoiceItem, len(items))
	for i := range items {
		item := items[i]
		item.SlNo = i + 1
		item.Amount = LineItemAmount(item.Quantity, item.Rate)
		out[i] = item
	}
	return out
}

// NewItem returns an empty intra-state line positioned after n existing lines.
func NewItem(id string, n int) domain.InvoiceItem {
	return domain.InvoiceItem{
		ID:       id,
		SlNo:     n + 1,
		GSTRate:  domain.DefaultGSTRate,
		Quantity: 1,
		GSTType:  domain.GSTTypeCGSTSGST,
	}
}

// ApplyCatalogItem copies description, HSN/SAC, GST rate and rate from a
// catalog entry onto a line, keeping its quantity.
func ApplyCatalogItem(item domain.InvoiceItem, saved domain.SavedItem) domain.InvoiceItem {
	item.Description = saved.Description
	item.HSNSAC = saved.HSNSAC
	item.GSTRate = saved.GSTRate
	item.Rate = saved.Rate
	item.Amount = LineItemAmount(item.Quantity, saved.Rate)
	return item
}
