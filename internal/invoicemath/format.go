package invoicemath

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount with exactly two decimals, rounding half away
// from zero, without symbol or grouping.
func FormatCurrency(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatDate renders an ISO date as DD-Mon-YY, e.g. 05-Jan-24. Input that is
// not a recognised date is returned as is.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02-Jan-06")
		}
	}
	return s
}
