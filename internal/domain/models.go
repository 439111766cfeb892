package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanyDetails is the issuing company's profile printed on every invoice.
type CompanyDetails struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name" binding:"required"`
	Address           string `json:"address" binding:"required"`
	GSTIN             string `json:"gstin" binding:"required,gstin"`
	State             string `json:"state"`
	StateCode         string `json:"stateCode"`
	PAN               string `json:"pan,omitempty" binding:"omitempty,pan"`
	BankName          string `json:"bankName,omitempty"`
	AccountNumber     string `json:"accountNumber,omitempty"`
	AccountHolderName string `json:"accountHolderName,omitempty"`
	IFSCCode          string `json:"ifscCode,omitempty" binding:"omitempty,ifsc"`
	Branch            string `json:"branch,omitempty"`
	Logo              string `json:"logo,omitempty"`
	Mobile            string `json:"mobile,omitempty"`
}

// CustomerDetails is a buyer that invoices are billed to.
type CustomerDetails struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin" binding:"omitempty,gstin"`
	State     string `json:"state,omitempty"`
	StateCode string `json:"stateCode,omitempty"`
	Email     string `json:"email,omitempty" binding:"omitempty,email"`
}

// InvoiceItem is one line on an invoice. Amount is always Quantity*Rate and
// SlNo is the 1-based position of the item in the invoice. HSNSAC is free
// text on a line; only catalog entries are held to the 4 to 8 digit format.
type InvoiceItem struct {
	ID          string  `json:"id"`
	SlNo        int     `json:"slNo"`
	Description string  `json:"description"`
	HSNSAC      string  `json:"hsnSac"`
	GSTRate     float64 `json:"gstRate" binding:"gstrate"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	GSTType     GSTType `json:"gstType,omitempty"`
}

// IsInterState reports whether the item is taxed as a single IGST line.
func (i *InvoiceItem) IsInterState() bool {
	return i.GSTType == GSTTypeIGST
}

// InvoiceData is the full editable content of an invoice.
type InvoiceData struct {
	InvoiceType      InvoiceType     `json:"invoiceType,omitempty"`
	InvoiceNo        string          `json:"invoiceNo"`
	InvoiceDate      string          `json:"invoiceDate"`
	DeliveryNote     string          `json:"deliveryNote,omitempty"`
	PaymentTerms     string          `json:"paymentTerms,omitempty"`
	SupplierRef      string          `json:"supplierRef,omitempty"`
	OtherRef         string          `json:"otherRef,omitempty"`
	BuyerOrderNo     string          `json:"buyerOrderNo,omitempty"`
	BuyerOrderDate   string          `json:"buyerOrderDate,omitempty"`
	DispatchDocNo    string          `json:"dispatchDocNo,omitempty"`
	DeliveryNoteDate string          `json:"deliveryNoteDate,omitempty"`
	DispatchThrough  string          `json:"dispatchThrough,omitempty"`
	Destination      string          `json:"destination,omitempty"`
	TermsOfDelivery  string          `json:"termsOfDelivery,omitempty"`
	Company          CompanyDetails  `json:"company" binding:"-"`
	Customer         CustomerDetails `json:"customer" binding:"-"`
	Items            []InvoiceItem   `json:"items" binding:"dive"`
	PAndF            float64         `json:"pAndF"`
	RoundOff         float64         `json:"roundOff"`
}

// SavedItem is a reusable catalog entry used to prefill invoice lines.
type SavedItem struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description" binding:"required"`
	HSNSAC      string  `json:"hsnSac" binding:"omitempty,hsnsac"`
	GSTRate     float64 `json:"gstRate" binding:"gstrate"`
	Rate        float64 `json:"rate" binding:"gte=0"`
}

// SavedInvoice is a persisted snapshot of an invoice.
type SavedInvoice struct {
	ID          uuid.UUID   `json:"id"`
	InvoiceData InvoiceData `json:"invoiceData"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TaxBreakdown is the per (HSN/SAC, GST rate) tax summary of an invoice.
type TaxBreakdown struct {
	HSNSAC       string  `json:"hsnSac"`
	GSTRate      float64 `json:"gstRate"`
	TaxableValue float64 `json:"taxableValue"`
	CGSTRate     float64 `json:"cgstRate"`
	CGSTAmount   float64 `json:"cgstAmount"`
	SGSTRate     float64 `json:"sgstRate"`
	SGSTAmount   float64 `json:"sgstAmount"`
	TotalTax     float64 `json:"totalTax"`
}

// InvoiceCounter is the persisted invoice number sequence for a fiscal year.
type InvoiceCounter struct {
	FiscalYear string `json:"fiscalYear"`
	Counter    int    `json:"counter"`
}
