package port

import "context"

// InvoiceEmail is an invoice delivery message.
type InvoiceEmail struct {
	ToEmail     string
	ToName      string
	CompanyName string
	InvoiceNo   string
	GrandTotal  string
	DownloadURL string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, msg InvoiceEmail) error
}
