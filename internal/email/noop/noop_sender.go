package noop

import (
	"context"

	"github.com/sirupsen/logrus"

	"gstinvoice/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs invoice deliveries.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, msg port.InvoiceEmail) error {
	logrus.WithFields(logrus.Fields{
		"to":         msg.ToEmail,
		"invoice_no": msg.InvoiceNo,
		"total":      msg.GrandTotal,
		"url":        msg.DownloadURL,
	}).Info("[NOOP EMAIL] invoice delivery")
	return nil
}
