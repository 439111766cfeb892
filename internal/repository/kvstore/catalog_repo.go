package kvstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

type catalogRepo struct {
	store port.KVStore
}

// NewCatalogRepo creates a CatalogRepository over store.
func NewCatalogRepo(store port.KVStore) port.CatalogRepository {
	return &catalogRepo{store: store}
}

func (r *catalogRepo) List(ctx context.Context) ([]domain.SavedItem, error) {
	items, err := loadList[domain.SavedItem](ctx, r.store, port.KeyItems)
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.List: %w", err)
	}
	return items, nil
}

func (r *catalogRepo) Save(ctx context.Context, item *domain.SavedItem) error {
	err := updateList(ctx, r.store, port.KeyItems, func(list []domain.SavedItem) ([]domain.SavedItem, error) {
		for i := range list {
			if item.ID != "" && list[i].ID == item.ID {
				list[i] = *item
				return list, nil
			}
		}
		item.ID = uuid.NewString()
		return append(list, *item), nil
	})
	if err != nil {
		return fmt.Errorf("catalogRepo.Save: %w", err)
	}
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, id string) error {
	err := updateList(ctx, r.store, port.KeyItems, func(list []domain.SavedItem) ([]domain.SavedItem, error) {
		kept := list[:0]
		for _, it := range list {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		return kept, nil
	})
	if err != nil {
		return fmt.Errorf("catalogRepo.Delete: %w", err)
	}
	return nil
}
