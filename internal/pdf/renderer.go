// Package pdf renders invoices as A4 portrait PDF documents laid out like the
// on-screen preview.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/port"
)

const (
	margin     = 10.0
	pageWidth  = 210.0
	pageHeight = 297.0
	bodyWidth  = pageWidth - 2*margin
	lineHeight = 5.0
	minRows    = 5

	declaration = "We declare that this invoice shows the actual price of the goods described " +
		"and that all particulars are true and correct."
)

// item table column widths, summing to bodyWidth.
var itemCols = []float64{12, 70, 22, 18, 20, 22, 26}

var itemHeaders = []string{"Sl No.", "Description of Goods", "HSN/SAC", "GST Rate", "Quantity", "Rate per", "Amount"}

// tax summary column widths, summing to bodyWidth.
var taxCols = []float64{30, 32, 20, 28, 20, 28, 32}

var taxHeaders = []string{"HSN/SAC", "Taxable Value", "CGST Rate", "CGST Amount", "SGST Rate", "SGST Amount", "Total Tax"}

type renderer struct{}

// NewRenderer creates the gofpdf-backed InvoiceRenderer.
func NewRenderer() port.InvoiceRenderer {
	return &renderer{}
}

// doc carries the gofpdf document and its cp1252 translator.
type doc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (r *renderer) Render(data *domain.InvoiceData, summary *invoicemath.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(summary.Title+" "+data.InvoiceNo, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-margin)
		pdf.SetFont("Arial", "I", 7)
		pdf.CellFormat(0, 4, "This is a Computer Generated Invoice", "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	d := &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	d.title(summary.Title)
	d.companyBlock(&data.Company)
	d.partiesBlock(data, summary)
	d.itemsTable(summary.Items)
	d.totals(summary)
	d.words("Amount Chargeable (in words): ", summary.AmountInWords)
	d.taxTable(summary)
	d.words("Tax Amount (in words): ", summary.TaxInWords)
	d.declaration()
	d.footer(&data.Company)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Render: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *doc) title(title string) {
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.CellFormat(bodyWidth, 8, title+" (ORIGINAL FOR RECIPIENT)", "1", 1, "C", false, 0, "")
}

func (d *doc) companyBlock(c *domain.CompanyDetails) {
	top := d.pdf.GetY()
	textX := margin + 2
	if name, ok := d.registerLogo(c.Logo); ok {
		d.pdf.ImageOptions(name, margin+2, top+2, 0, 20, false, gofpdf.ImageOptions{}, 0, "")
		textX = margin + 40
	}
	width := bodyWidth - (textX - margin) - 2

	d.pdf.SetXY(textX, top+2)
	d.pdf.SetFont("Arial", "B", 14)
	d.pdf.MultiCell(width, 7, d.tr(c.Name), "", "L", false)
	d.pdf.SetX(textX)
	d.pdf.SetFont("Arial", "", 9)
	d.pdf.MultiCell(width, lineHeight, d.tr(c.Address), "", "L", false)
	d.pdf.SetX(textX)
	d.pdf.MultiCell(width, lineHeight,
		d.tr(fmt.Sprintf("GSTIN: %s   State: %s   Code: %s", c.GSTIN, c.State, c.StateCode)), "", "L", false)
	if c.Mobile != "" {
		d.pdf.SetX(textX)
		d.pdf.MultiCell(width, lineHeight, d.tr("Mobile: "+c.Mobile), "", "L", false)
	}

	bottom := d.pdf.GetY() + 2
	if textX > margin+2 && bottom < top+24 {
		bottom = top + 24
	}
	d.pdf.Rect(margin, top, bodyWidth, bottom-top, "D")
	d.pdf.SetXY(margin, bottom)
}

// registerLogo registers a base64 data URL image and returns its name.
func (d *doc) registerLogo(logo string) (string, bool) {
	if !strings.HasPrefix(logo, "data:image/") {
		return "", false
	}
	meta, payload, found := strings.Cut(logo, ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return "", false
	}
	var kind string
	switch {
	case strings.HasPrefix(meta, "data:image/png"):
		kind = "PNG"
	case strings.HasPrefix(meta, "data:image/jpeg"), strings.HasPrefix(meta, "data:image/jpg"):
		kind = "JPG"
	default:
		return "", false
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", false
	}
	d.pdf.RegisterImageOptionsReader("logo", gofpdf.ImageOptions{ImageType: kind}, bytes.NewReader(raw))
	if d.pdf.Err() {
		d.pdf.ClearError()
		return "", false
	}
	return "logo", true
}

func (d *doc) partiesBlock(data *domain.InvoiceData, summary *invoicemath.Summary) {
	half := bodyWidth / 2
	top := d.pdf.GetY()
	cust := &data.Customer

	d.pdf.SetXY(margin+1, top+1)
	d.pdf.SetFont("Arial", "B", 9)
	d.pdf.CellFormat(half-2, lineHeight, "Buyer (Bill to)", "", 2, "L", false, 0, "")
	d.pdf.SetFont("Arial", "B", 10)
	d.pdf.MultiCell(half-2, lineHeight, d.tr(cust.Name), "", "L", false)
	d.pdf.SetX(margin + 1)
	d.pdf.SetFont("Arial", "", 9)
	d.pdf.MultiCell(half-2, lineHeight, d.tr(cust.Address), "", "L", false)
	d.pdf.SetX(margin + 1)
	d.pdf.MultiCell(half-2, lineHeight, d.tr("GSTIN: "+cust.GSTIN), "", "L", false)
	if cust.State != "" {
		state := "State: " + cust.State
		if cust.StateCode != "" {
			state += "   Code: " + cust.StateCode
		}
		d.pdf.SetX(margin + 1)
		d.pdf.MultiCell(half-2, lineHeight, d.tr(state), "", "L", false)
	}
	leftBottom := d.pdf.GetY()

	meta := [][2]string{
		{"Invoice No.", data.InvoiceNo},
		{"Dated", summary.InvoiceDate},
		{"Delivery Note", data.DeliveryNote},
		{"Mode/Terms of Payment", data.PaymentTerms},
		{"Supplier's Ref.", data.SupplierRef},
		{"Other Reference(s)", data.OtherRef},
		{"Buyer's Order No.", joinDated(data.BuyerOrderNo, data.BuyerOrderDate)},
		{"Dispatch Doc No.", joinDated(data.DispatchDocNo, data.DeliveryNoteDate)},
		{"Dispatch through", data.DispatchThrough},
		{"Destination", data.Destination},
		{"Terms of Delivery", data.TermsOfDelivery},
	}
	d.pdf.SetXY(margin+half+1, top+1)
	for _, kv := range meta {
		d.pdf.SetX(margin + half + 1)
		d.pdf.SetFont("Arial", "B", 8)
		labelW := d.pdf.GetStringWidth(kv[0]+": ") + 1
		d.pdf.CellFormat(labelW, 4.5, kv[0]+": ", "", 0, "L", false, 0, "")
		d.pdf.SetFont("Arial", "", 8)
		d.pdf.MultiCell(half-2-labelW, 4.5, d.tr(kv[1]), "", "L", false)
	}
	rightBottom := d.pdf.GetY()

	bottom := leftBottom
	if rightBottom > bottom {
		bottom = rightBottom
	}
	bottom++
	d.pdf.Rect(margin, top, half, bottom-top, "D")
	d.pdf.Rect(margin+half, top, half, bottom-top, "D")
	d.pdf.SetXY(margin, bottom)
}

func joinDated(value, date string) string {
	if date == "" {
		return value
	}
	return value + "   Dated: " + invoicemath.FormatDate(date)
}

func (d *doc) itemsHeader() {
	d.pdf.SetFont("Arial", "B", 8)
	d.pdf.SetFillColor(230, 230, 230)
	for i, h := range itemHeaders {
		d.pdf.CellFormat(itemCols[i], 7, h, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *doc) itemsTable(items []domain.InvoiceItem) {
	d.itemsHeader()
	d.pdf.SetFont("Arial", "", 8)
	aligns := []string{"C", "L", "C", "C", "R", "R", "R"}

	for i := range items {
		it := &items[i]
		d.row(itemCols, aligns, []string{
			strconv.Itoa(it.SlNo),
			it.Description,
			it.HSNSAC,
			formatNumber(it.GSTRate) + "%",
			formatNumber(it.Quantity),
			formatNumber(it.Rate),
			invoicemath.FormatCurrency(it.Amount),
		}, d.itemsHeader)
	}
	empty := make([]string, len(itemCols))
	for i := len(items); i < minRows; i++ {
		d.row(itemCols, aligns, empty, d.itemsHeader)
	}
}

// row draws one bordered table row whose height fits its tallest cell. When
// the row would cross the bottom margin a new page is started and header, if
// set, is drawn again.
func (d *doc) row(widths []float64, aligns, cells []string, header func()) {
	const pad = 1.0
	lines := 1
	split := make([][]string, len(cells))
	for i, c := range cells {
		for _, l := range d.pdf.SplitLines([]byte(d.tr(c)), widths[i]-2*pad) {
			split[i] = append(split[i], string(l))
		}
		if len(split[i]) > lines {
			lines = len(split[i])
		}
	}
	h := float64(lines)*lineHeight + 1

	if d.pdf.GetY()+h > pageHeight-2*margin {
		d.pdf.AddPage()
		if header != nil {
			header()
			d.pdf.SetFont("Arial", "", 8)
		}
	}

	x, y := d.pdf.GetX(), d.pdf.GetY()
	for i := range cells {
		d.pdf.Rect(x, y, widths[i], h, "D")
		for j, l := range split[i] {
			d.pdf.SetXY(x+pad, y+0.5+float64(j)*lineHeight)
			d.pdf.CellFormat(widths[i]-2*pad, lineHeight, l, "", 0, aligns[i], false, 0, "")
		}
		x += widths[i]
	}
	d.pdf.SetXY(margin, y+h)
}

func (d *doc) totals(s *invoicemath.Summary) {
	labelW := bodyWidth - itemCols[len(itemCols)-1]
	valueW := itemCols[len(itemCols)-1]
	line := func(label string, value float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		d.pdf.SetFont("Arial", style, 9)
		d.pdf.CellFormat(labelW, 6, label, "1", 0, "R", false, 0, "")
		d.pdf.CellFormat(valueW, 6, invoicemath.FormatCurrency(value), "1", 1, "R", false, 0, "")
	}

	line("CGST:", s.CGST, false)
	line("SGST:", s.SGST, false)
	if s.IGST != 0 {
		line("IGST:", s.IGST, false)
	}
	line("P&F:", s.PAndF, false)
	line("Round off:", s.RoundOff, false)
	line("Total:", s.GrandTotal, true)
}

func (d *doc) words(label, text string) {
	d.pdf.SetFont("Arial", "B", 9)
	labelW := d.pdf.GetStringWidth(label) + 2
	top := d.pdf.GetY()
	d.pdf.SetXY(margin+1, top+1)
	d.pdf.CellFormat(labelW, lineHeight, label, "", 0, "L", false, 0, "")
	d.pdf.SetFont("Arial", "", 9)
	d.pdf.MultiCell(bodyWidth-labelW-2, lineHeight, d.tr(text), "", "L", false)
	bottom := d.pdf.GetY() + 1
	d.pdf.Rect(margin, top, bodyWidth, bottom-top, "D")
	d.pdf.SetXY(margin, bottom)
}

func (d *doc) taxHeader() {
	d.pdf.SetFont("Arial", "B", 8)
	d.pdf.SetFillColor(230, 230, 230)
	for i, h := range taxHeaders {
		d.pdf.CellFormat(taxCols[i], 7, h, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *doc) taxTable(s *invoicemath.Summary) {
	d.taxHeader()
	d.pdf.SetFont("Arial", "", 8)
	aligns := []string{"C", "R", "C", "R", "C", "R", "R"}
	for _, b := range s.Breakdown {
		d.row(taxCols, aligns, []string{
			b.HSNSAC,
			invoicemath.FormatCurrency(b.TaxableValue),
			formatNumber(b.CGSTRate) + "%",
			invoicemath.FormatCurrency(b.CGSTAmount),
			formatNumber(b.SGSTRate) + "%",
			invoicemath.FormatCurrency(b.SGSTAmount),
			invoicemath.FormatCurrency(b.TotalTax),
		}, d.taxHeader)
	}

	d.pdf.SetFont("Arial", "B", 8)
	d.row(taxCols, aligns, []string{
		"Total",
		invoicemath.FormatCurrency(s.Subtotal),
		"",
		invoicemath.FormatCurrency(s.CGST),
		"",
		invoicemath.FormatCurrency(s.SGST),
		invoicemath.FormatCurrency(s.CGST + s.SGST),
	}, d.taxHeader)
	if s.IGST != 0 {
		d.pdf.CellFormat(bodyWidth-taxCols[len(taxCols)-1], 6, "Integrated Tax (IGST)", "1", 0, "R", false, 0, "")
		d.pdf.CellFormat(taxCols[len(taxCols)-1], 6, invoicemath.FormatCurrency(s.IGST), "1", 1, "R", false, 0, "")
	}
}

func (d *doc) declaration() {
	d.pdf.SetFont("Arial", "B", 8)
	d.pdf.CellFormat(bodyWidth, lineHeight, "Declaration:", "LTR", 1, "L", false, 0, "")
	d.pdf.SetFont("Arial", "", 8)
	d.pdf.MultiCell(bodyWidth, 4, declaration, "LBR", "L", false)
}

func (d *doc) footer(c *domain.CompanyDetails) {
	const height = 32.0
	third := bodyWidth / 3
	if d.pdf.GetY()+height > pageHeight-2*margin {
		d.pdf.AddPage()
	}
	top := d.pdf.GetY()

	d.pdf.SetXY(margin+1, top+1)
	bank := [][2]string{
		{"Company's PAN", c.PAN},
		{"A/c Holder's Name", c.AccountHolderName},
		{"Bank Name", c.BankName},
		{"A/c No.", c.AccountNumber},
		{"Branch & IFSC Code", strings.TrimSpace(c.Branch + " " + c.IFSCCode)},
	}
	for i, kv := range bank {
		if i == 1 {
			d.pdf.SetX(margin + 1)
			d.pdf.SetFont("Arial", "B", 8)
			d.pdf.CellFormat(third-2, 4.5, "Company's Bank Details", "", 2, "L", false, 0, "")
		}
		d.pdf.SetX(margin + 1)
		d.pdf.SetFont("Arial", "", 7)
		d.pdf.MultiCell(third-2, 4.5, d.tr(kv[0]+": "+kv[1]), "", "L", false)
	}

	d.pdf.SetXY(margin+third, top+1)
	d.pdf.SetFont("Arial", "B", 8)
	d.pdf.CellFormat(third, lineHeight, "Customer's Seal and Signature", "", 0, "C", false, 0, "")

	d.pdf.SetXY(margin+2*third, top+1)
	d.pdf.CellFormat(third, lineHeight, d.tr("For "+c.Name), "", 0, "C", false, 0, "")
	d.pdf.SetXY(margin+2*third, top+height-lineHeight-1)
	d.pdf.SetFont("Arial", "", 8)
	d.pdf.CellFormat(third, lineHeight, "Authorised Signatory", "", 0, "C", false, 0, "")

	bottom := top + height
	if y := d.pdf.GetY(); y > bottom {
		bottom = y
	}
	for i := 0; i < 3; i++ {
		d.pdf.Rect(margin+float64(i)*third, top, third, bottom-top, "D")
	}
	d.pdf.SetXY(margin, bottom)
}

// formatNumber prints a quantity or rate without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
