package invoicemath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstinvoice/internal/invoicemath"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero"},
		{"rounds to zero", 0.004, "Zero"},
		{"one", 1, "Rupees One Only"},
		{"teen", 15, "Rupees Fifteen Only"},
		{"tens with unit", 42, "Rupees Forty Two Only"},
		{"round tens", 90, "Rupees Ninety Only"},
		{"hundred", 100, "Rupees One Hundred Only"},
		{"hundred with tail", 101, "Rupees One Hundred and One Only"},
		{"thousand with hundreds", 1234.50, "Rupees One Thousand Two Hundred and Thirty Four and Fifty Paise Only"},
		{"thousand with small tail", 1005, "Rupees One Thousand and Five Only"},
		{"thousand with hundred tail", 1100, "Rupees One Thousand One Hundred Only"},
		{"lakh", 100000, "Rupees One Lakh Only"},
		{"lakh with tail", 100050, "Rupees One Lakh and Fifty Only"},
		{"lakhs and thousands", 1234567, "Rupees Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Only"},
		{"crore", 10000000, "Rupees One Crore Only"},
		{"crores mixed", 123456789, "Rupees Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred and Eighty Nine Only"},
		{"thousand crore", 10000000000, "Rupees One Thousand Crore Only"},
		{"paise only", 0.5, "Rupees  and Fifty Paise Only"},
		{"single paisa", 0.01, "Rupees  and One Paise Only"},
		{"paise rounding", 236.005, "Rupees Two Hundred and Thirty Six and One Paise Only"},
		{"float artifact", 0.1 + 0.2, "Rupees  and Thirty Paise Only"},
		{"negative", -12.5, "Minus Rupees Twelve and Fifty Paise Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoicemath.NumberToWords(tt.amount))
		})
	}
}

func TestNumberToWords_BeyondInt64(t *testing.T) {
	assert.Equal(t, "Rupees One Lakh Crore Crore Only", invoicemath.NumberToWords(1e19))
	assert.Equal(t, "Rupees Twenty Five Lakh Crore Crore Only", invoicemath.NumberToWords(2.5e20))
	assert.Equal(t, "Minus Rupees One Lakh Crore Crore Only", invoicemath.NumberToWords(-1e19))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1234.50", invoicemath.FormatCurrency(1234.5))
	assert.Equal(t, "0.00", invoicemath.FormatCurrency(0))
	assert.Equal(t, "236.00", invoicemath.FormatCurrency(236))
	assert.Equal(t, "1.01", invoicemath.FormatCurrency(1.005))
	assert.Equal(t, "-1.01", invoicemath.FormatCurrency(-1.005))
	assert.Equal(t, "0.30", invoicemath.FormatCurrency(0.1+0.2))
	assert.Equal(t, "1234567.89", invoicemath.FormatCurrency(1234567.891))
	assert.Equal(t, "0.00", invoicemath.FormatCurrency(-0.001))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05-Jan-24", invoicemath.FormatDate("2024-01-05"))
	assert.Equal(t, "31-Dec-99", invoicemath.FormatDate("1999-12-31"))
	assert.Equal(t, "15-Aug-25", invoicemath.FormatDate("2025-08-15T10:30:00Z"))
	assert.Equal(t, "01-Mar-26", invoicemath.FormatDate("2026-03-01T08:00:00"))
	assert.Equal(t, "not a date", invoicemath.FormatDate("not a date"))
	assert.Equal(t, "", invoicemath.FormatDate(""))
}
