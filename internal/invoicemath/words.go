package invoicemath

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	lakh     = 100000
	thousand = 1000
)

// NumberToWords spells a rupee amount the way it is written on Indian
// invoices, e.g. 1234.5 is "Rupees One Thousand Two Hundred and Thirty Four
// and Fifty Paise Only".
//
// The amount is first rounded to paise. A zero amount is just "Zero". When
// the rupee part is zero but paise are not, the rupee segment stays empty:
// "Rupees  and Fifty Paise Only".
func NumberToWords(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsZero() {
		return "Zero"
	}

	var sb strings.Builder
	if d.IsNegative() {
		sb.WriteString("Minus ")
		d = d.Neg()
	}

	rupees := d.Truncate(0)
	paise := d.Sub(rupees).Shift(2)

	sb.WriteString("Rupees ")
	sb.WriteString(spellIndian(rupees))
	if paise.IsPositive() {
		sb.WriteString(" and ")
		sb.WriteString(spellIndian(paise))
		sb.WriteString(" Paise")
	}
	sb.WriteString(" Only")
	return sb.String()
}

// spellIndian spells a non-negative whole number n using crore, lakh and
// thousand grouping. Crore counts of a thousand or more are grouped the same
// way, so amounts past the int64 range still spell out.
func spellIndian(n decimal.Decimal) string {
	if n.IsZero() {
		return ""
	}

	crores := n.Shift(-7).Truncate(0)
	rest := n.Sub(crores.Shift(7)).IntPart()
	l := rest / lakh
	t := (rest % lakh) / thousand
	r := rest % thousand

	var parts []string
	if crores.IsPositive() {
		parts = append(parts, spellIndian(crores)+" Crore")
	}
	if l > 0 {
		parts = append(parts, belowThousand(l)+" Lakh")
	}
	if t > 0 {
		parts = append(parts, belowThousand(t)+" Thousand")
	}
	if r > 0 {
		words := belowThousand(r)
		if (crores.IsPositive() || l > 0 || t > 0) && r < 100 {
			words = "and " + words
		}
		parts = append(parts, words)
	}
	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	if n == 0 {
		return ""
	}
	if n < 100 {
		return belowHundred(n)
	}
	words := ones[n/100] + " Hundred"
	if rem := n % 100; rem > 0 {
		words += " and " + belowHundred(rem)
	}
	return words
}

func belowHundred(n int64) string {
	if n == 0 {
		return ""
	}
	if n < 20 {
		return ones[n]
	}
	words := tens[n/10]
	if unit := n % 10; unit > 0 {
		words += " " + ones[unit]
	}
	return words
}
