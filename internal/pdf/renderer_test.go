package pdf_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/pdf"
)

func sampleInvoice(items int) *domain.InvoiceData {
	data := &domain.InvoiceData{
		InvoiceType:    domain.InvoiceTypeProforma,
		InvoiceNo:      "24-25/001",
		InvoiceDate:    "2024-06-01",
		BuyerOrderNo:   "PO-77",
		BuyerOrderDate: "2024-05-28",
		Company: domain.CompanyDetails{
			Name: "Acme Traders", Address: "12 MG Road, Pune", GSTIN: "27AAPFU0939F1ZV",
			State: "Maharashtra", StateCode: "27", PAN: "AAPFU0939F", BankName: "State Bank",
			AccountNumber: "0001112223", IFSCCode: "SBIN0000001",
		},
		Customer: domain.CustomerDetails{Name: "Bharat Stores", Address: "Nagpur", State: "Maharashtra", StateCode: "27"},
		PAndF:    25,
		RoundOff: 0.4,
	}
	for i := 0; i < items; i++ {
		data.Items = append(data.Items, domain.InvoiceItem{
			ID:          fmt.Sprint(i),
			Description: "Galvanised steel bracket with a fairly long description that wraps across lines",
			HSNSAC:      "7326",
			GSTRate:     18,
			Quantity:    3,
			Rate:        149.5,
		})
	}
	return data
}

func TestRenderer_Render(t *testing.T) {
	data := sampleInvoice(2)
	summary := invoicemath.Summarize(data)

	out, err := pdf.NewRenderer().Render(data, &summary)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderer_Render_ManyItemsSpillsOntoPages(t *testing.T) {
	short := sampleInvoice(1)
	long := sampleInvoice(60)
	shortSum := invoicemath.Summarize(short)
	longSum := invoicemath.Summarize(long)

	r := pdf.NewRenderer()
	a, err := r.Render(short, &shortSum)
	require.NoError(t, err)
	b, err := r.Render(long, &longSum)
	require.NoError(t, err)

	assert.Greater(t, bytes.Count(b, []byte("/Type /Page\n")), bytes.Count(a, []byte("/Type /Page\n")))
}

func TestRenderer_Render_IgnoresBadLogo(t *testing.T) {
	data := sampleInvoice(1)
	data.Company.Logo = "data:image/png;base64,not-base64!!"
	summary := invoicemath.Summarize(data)

	_, err := pdf.NewRenderer().Render(data, &summary)
	assert.NoError(t, err)
}
