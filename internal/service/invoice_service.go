package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gstinvoice/internal/csvexport"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/port"
)

// RenderedPDF is a rendered invoice ready for download.
type RenderedPDF struct {
	FileName string
	Content  []byte
}

// SendResult describes a delivered invoice.
type SendResult struct {
	InvoiceNo   string `json:"invoiceNo"`
	SentTo      string `json:"sentTo"`
	DownloadURL string `json:"downloadUrl"`
}

// ArchiveConfig locates archived invoice PDFs.
type ArchiveConfig struct {
	Bucket        string
	PresignExpiry int64
}

// InvoiceService computes, persists, renders and delivers invoices.
type InvoiceService interface {
	Preview(data *domain.InvoiceData) invoicemath.Summary
	Save(ctx context.Context, id *uuid.UUID, data domain.InvoiceData) (*domain.SavedInvoice, error)
	List(ctx context.Context, search string) ([]domain.SavedInvoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedInvoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RenderPDF(ctx context.Context, id uuid.UUID) (*RenderedPDF, error)
	RenderDraftPDF(data *domain.InvoiceData) (*RenderedPDF, error)
	Send(ctx context.Context, id uuid.UUID) (*SendResult, error)
	ExportCSV(ctx context.Context, w io.Writer) (string, error)
}

type invoiceService struct {
	invoices  port.InvoiceRepository
	company   port.CompanyRepository
	numbering NumberingService
	renderer  port.InvoiceRenderer
	storage   port.ObjectStorage
	email     port.EmailSender
	archive   ArchiveConfig
	now       func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation.
// storage may be nil, in which case Send reports domain.ErrArchiveDisabled.
func NewInvoiceService(
	invoices port.InvoiceRepository,
	company port.CompanyRepository,
	numbering NumberingService,
	renderer port.InvoiceRenderer,
	storage port.ObjectStorage,
	email port.EmailSender,
	archive ArchiveConfig,
) InvoiceService {
	return &invoiceService{
		invoices:  invoices,
		company:   company,
		numbering: numbering,
		renderer:  renderer,
		storage:   storage,
		email:     email,
		archive:   archive,
		now:       time.Now,
	}
}

func (s *invoiceService) Preview(data *domain.InvoiceData) invoicemath.Summary {
	return invoicemath.Summarize(data)
}

// checkComplete reports why data cannot be saved or printed yet.
func checkComplete(data *domain.InvoiceData) error {
	switch {
	case strings.TrimSpace(data.Company.Name) == "":
		return domain.ErrCompanyMissing
	case strings.TrimSpace(data.Customer.Name) == "":
		return domain.ErrCustomerMissing
	case len(data.Items) == 0:
		return domain.ErrNoItems
	}
	return nil
}

func (s *invoiceService) Save(ctx context.Context, id *uuid.UUID, data domain.InvoiceData) (*domain.SavedInvoice, error) {
	if err := checkComplete(&data); err != nil {
		return nil, err
	}
	data.Items = invoicemath.NormalizeItems(data.Items)
	if data.InvoiceType == "" {
		data.InvoiceType = domain.InvoiceTypeTax
	}

	now := s.now().UTC()
	invoice := &domain.SavedInvoice{ID: uuid.New(), CreatedAt: now}
	if id != nil {
		invoice.ID = *id
		existing, err := s.invoices.GetByID(ctx, *id)
		switch {
		case err == nil:
			invoice.CreatedAt = existing.CreatedAt
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("invoice.Save: %w", err)
		}
	}

	if strings.TrimSpace(data.InvoiceNo) == "" {
		no, err := s.numbering.Next(ctx)
		if err != nil {
			return nil, err
		}
		data.InvoiceNo = no
	}

	invoice.InvoiceData = data
	invoice.UpdatedAt = now
	if err := s.invoices.Save(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) List(ctx context.Context, search string) ([]domain.SavedInvoice, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})

	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return invoices, nil
	}
	matched := make([]domain.SavedInvoice, 0, len(invoices))
	for i := range invoices {
		data := &invoices[i].InvoiceData
		if strings.Contains(strings.ToLower(data.InvoiceNo), query) ||
			strings.Contains(strings.ToLower(data.Customer.Name), query) {
			matched = append(matched, invoices[i])
		}
	}
	return matched, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedInvoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, id); err != nil {
		return err
	}

	if s.storage != nil {
		key := archiveKey(invoice)
		if err := s.storage.Delete(ctx, s.archive.Bucket, key); err != nil {
			logrus.WithFields(logrus.Fields{"invoice_id": id, "key": key}).
				WithError(err).Warn("removing archived invoice PDF")
		}
	}
	return nil
}

func (s *invoiceService) RenderPDF(ctx context.Context, id uuid.UUID) (*RenderedPDF, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.RenderDraftPDF(&invoice.InvoiceData)
}

func (s *invoiceService) RenderDraftPDF(data *domain.InvoiceData) (*RenderedPDF, error) {
	if err := checkComplete(data); err != nil {
		return nil, err
	}
	summary := invoicemath.Summarize(data)
	content, err := s.renderer.Render(data, &summary)
	if err != nil {
		return nil, fmt.Errorf("invoice.Render: %w", err)
	}
	return &RenderedPDF{
		FileName: invoicemath.PDFFileName(data.InvoiceNo),
		Content:  content,
	}, nil
}

func (s *invoiceService) Send(ctx context.Context, id uuid.UUID) (*SendResult, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data := &invoice.InvoiceData
	if strings.TrimSpace(data.Customer.Email) == "" {
		return nil, domain.ErrCustomerEmailMissing
	}
	if s.storage == nil {
		return nil, domain.ErrArchiveDisabled
	}

	pdf, err := s.RenderDraftPDF(data)
	if err != nil {
		return nil, err
	}

	key := archiveKey(invoice)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.archive.Bucket,
		Key:         key,
		Body:        bytes.NewReader(pdf.Content),
		ContentType: "application/pdf",
		Size:        int64(len(pdf.Content)),
	}); err != nil {
		return nil, fmt.Errorf("invoice.Send upload: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.archive.Bucket, key, s.archive.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("invoice.Send presign: %w", err)
	}

	summary := invoicemath.Summarize(data)
	err = s.email.SendInvoiceEmail(ctx, port.InvoiceEmail{
		ToEmail:     data.Customer.Email,
		ToName:      data.Customer.Name,
		CompanyName: data.Company.Name,
		InvoiceNo:   data.InvoiceNo,
		GrandTotal:  invoicemath.FormatCurrency(summary.GrandTotal),
		DownloadURL: url,
	})
	if err != nil {
		return nil, fmt.Errorf("invoice.Send email: %w", err)
	}

	return &SendResult{InvoiceNo: data.InvoiceNo, SentTo: data.Customer.Email, DownloadURL: url}, nil
}

// ExportCSV writes the invoice register, newest first, and returns the
// download file name.
func (s *invoiceService) ExportCSV(ctx context.Context, w io.Writer) (string, error) {
	invoices, err := s.List(ctx, "")
	if err != nil {
		return "", err
	}

	companyName := ""
	company, err := s.company.Get(ctx)
	switch {
	case err == nil:
		companyName = company.Name
	case !errors.Is(err, domain.ErrNotFound):
		return "", fmt.Errorf("invoice.ExportCSV: %w", err)
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return "", err
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return "", err
	}
	if err := cw.WriteInvoices(invoices); err != nil {
		return "", err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("invoice.ExportCSV: %w", err)
	}
	return csvexport.BuildFilename(companyName, s.now()), nil
}

func archiveKey(invoice *domain.SavedInvoice) string {
	return fmt.Sprintf("invoices/%s/%s", invoice.ID, invoicemath.PDFFileName(invoice.InvoiceData.InvoiceNo))
}
