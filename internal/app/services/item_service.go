package services

import (
	"context"
	"fmt"
	"time"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/cache"
	"github.com/berk/parentportal/internal/pkg/helpers"
)

// itemStore is the listing surface the item service needs
type itemStore interface {
	List(ctx context.Context, limit int, offset uint64) ([]models.Parent, error)
	Count(ctx context.Context) (int64, error)
}

// ItemService defines the interface for the cached, paginated items listing
type ItemService interface {
	ListItems(ctx context.Context, page, limit int) (*dto.ItemPage, error)
}

// itemServiceImpl implements the ItemService interface
type itemServiceImpl struct {
	items itemStore
	store cache.Store
	ttl   time.Duration
}

// NewItemService creates a new item service instance. store may be nil, in
// which case every call goes straight to the database.
func NewItemService(items itemStore, store cache.Store, ttl time.Duration) ItemService {
	return &itemServiceImpl{
		items: items,
		store: store,
		ttl:   ttl,
	}
}

// ListItems returns one page of items through the cache-aside helper. The
// cache key is derived from the query parameters so each page caches
// independently.
func (s *itemServiceImpl) ListItems(ctx context.Context, page, limit int) (*dto.ItemPage, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("items?page=%d&limit=%d", page, limit)

	result, err := cache.GetOrSet(ctx, s.store, key, s.ttl, func(ctx context.Context) (dto.ItemPage, error) {
		rows, err := s.items.List(ctx, limit, offset)
		if err != nil {
			return dto.ItemPage{}, fmt.Errorf("error listing items: %w", err)
		}

		total, err := s.items.Count(ctx)
		if err != nil {
			return dto.ItemPage{}, fmt.Errorf("error counting items: %w", err)
		}

		return dto.ItemPage{
			Data:       rows,
			Pagination: helpers.NewPagination(total, page, limit),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
