package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/port"
)

// CatalogService manages the reusable line-item catalog.
type CatalogService interface {
	List(ctx context.Context) ([]domain.SavedItem, error)
	Save(ctx context.Context, item *domain.SavedItem) (*domain.SavedItem, error)
	Delete(ctx context.Context, id string) error
	// NewLine returns a fresh invoice line placed after position existing
	// lines, prefilled from the catalog entry catalogID when it is not empty.
	NewLine(ctx context.Context, catalogID string, position int) (*domain.InvoiceItem, error)
}

type catalogService struct {
	repo port.CatalogRepository
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(repo port.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) List(ctx context.Context) ([]domain.SavedItem, error) {
	return s.repo.List(ctx)
}

func (s *catalogService) Save(ctx context.Context, item *domain.SavedItem) (*domain.SavedItem, error) {
	item.Description = strings.TrimSpace(item.Description)
	if item.Description == "" {
		return nil, fmt.Errorf("%w: item description is required", domain.ErrValidation)
	}
	if !domain.IsValidGSTRate(item.GSTRate) {
		return nil, fmt.Errorf("%w: GST rate must be one of 0, 5, 12, 18, 28", domain.ErrValidation)
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *catalogService) NewLine(ctx context.Context, catalogID string, position int) (*domain.InvoiceItem, error) {
	if position < 0 {
		return nil, fmt.Errorf("%w: position must not be negative", domain.ErrValidation)
	}
	line := invoicemath.NewItem(uuid.NewString(), position)
	if catalogID == "" {
		return &line, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, saved := range items {
		if saved.ID == catalogID {
			line = invoicemath.ApplyCatalogItem(line, saved)
			return &line, nil
		}
	}
	return nil, fmt.Errorf("catalog item %s: %w", catalogID, domain.ErrNotFound)
}
