package ses

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gstinvoice/internal/port"
)

func TestBuildInvoiceHTML(t *testing.T) {
	body := buildInvoiceHTML(port.InvoiceEmail{
		ToEmail:     "accounts@globex.test",
		ToName:      "Globex & Sons",
		CompanyName: "Acme Traders",
		InvoiceNo:   "24-25/007",
		GrandTotal:  "1292.00",
		DownloadURL: "https://archive.test/invoice.pdf?a=1&b=2",
	})

	assert.Contains(t, body, "Invoice 24-25/007")
	assert.Contains(t, body, "Dear Globex &amp; Sons,")
	assert.Contains(t, body, "Rs. 1292.00")
	assert.Contains(t, body, `href="https://archive.test/invoice.pdf?a=1&amp;b=2"`)
	assert.Equal(t, 2, strings.Count(body, "https://archive.test/invoice.pdf"))
}

func TestBuildInvoiceHTML_EscapesMarkup(t *testing.T) {
	body := buildInvoiceHTML(port.InvoiceEmail{ToName: "<script>alert(1)</script>"})
	assert.NotContains(t, body, "<script>")
}
