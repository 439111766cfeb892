package service

import (
	"context"
	"fmt"
	"time"

	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/port"
)

// NumberingService hands out sequential invoice numbers.
type NumberingService interface {
	// Next consumes and returns the next number, e.g. "24-25/007".
	Next(ctx context.Context) (string, error)
}

type numberingService struct {
	counters     port.CounterRepository
	aprilCutover bool
	now          func() time.Time
}

// NewNumberingService creates a NumberingService. now supplies the date that
// decides the fiscal year label; nil means time.Now.
func NewNumberingService(counters port.CounterRepository, aprilCutover bool, now func() time.Time) NumberingService {
	if now == nil {
		now = time.Now
	}
	return &numberingService{counters: counters, aprilCutover: aprilCutover, now: now}
}

func (s *numberingService) Next(ctx context.Context) (string, error) {
	label := invoicemath.FiscalYearLabel(s.now(), s.aprilCutover)
	counter, err := s.counters.Advance(ctx, label)
	if err != nil {
		return "", fmt.Errorf("numbering.Next: %w", err)
	}
	return invoicemath.FormatInvoiceNumber(counter), nil
}
