package inventory

import (
	"context"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/core/id"
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/pkg/logger"
)

// Repository gives the service access to a restaurant's catalog. The
// implementation (the snapshot store) runs update functions atomically and
// publishes the result as a new immutable snapshot.
type Repository interface {
	// Catalog returns the current catalog snapshot for a restaurant.
	Catalog(ctx context.Context, restaurantID string) (Catalog, error)

	// UpdateCatalog applies fn to the current catalog under the mutation
	// lock and swaps in the returned catalog as the new snapshot.
	UpdateCatalog(ctx context.Context, restaurantID string, fn func(Catalog) (Catalog, error)) (Catalog, error)
}

// NewItemInput is a candidate catalog row: what a caller supplies before the
// id and status are assigned.
type NewItemInput struct {
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	UnitCost float64 `json:"unitCost"`
}

// Service provides catalog operations for a restaurant's inventory.
type Service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// buildItem validates an input row and mints a catalog entry with a fresh
// id and derived status. The single construction point for items, so status
// can never drift from stock.
func buildItem(in NewItemInput) (Item, error) {
	if !types.IsFinite(in.UnitCost) {
		return Item{}, apperror.NewValidation("unit cost must be a finite number").
			WithDetail("field", "unitCost")
	}
	item := Item{
		ID:       id.NewString(),
		Name:     in.Name,
		Stock:    in.Stock,
		UnitCost: types.NewMoney(in.UnitCost),
		Status:   Classify(in.Stock),
	}
	if err := item.Validate(context.Background()); err != nil {
		return Item{}, err
	}
	return item, nil
}

// AddItem validates and prepends a new item to the catalog
// (most-recent-first is the display convention).
func (s *Service) AddItem(ctx context.Context, restaurantID string, in NewItemInput) (Item, error) {
	item, err := buildItem(in)
	if err != nil {
		return Item{}, err
	}

	_, err = s.repo.UpdateCatalog(ctx, restaurantID, func(c Catalog) (Catalog, error) {
		next := make(Catalog, 0, len(c)+1)
		next = append(next, item)
		next = append(next, c...)
		return next, nil
	})
	if err != nil {
		return Item{}, err
	}

	logger.Info(ctx, "inventory item added",
		"restaurant_id", restaurantID,
		"item_id", item.ID,
		"status", item.Status,
	)

	return item, nil
}

// DeleteItem removes an item by id. Idempotent: deleting an absent id is not
// an error. Deletion never cascades to dishes; ingredients referencing the
// removed id become dangling and are skipped by the cost calculator.
func (s *Service) DeleteItem(ctx context.Context, restaurantID, itemID string) error {
	_, err := s.repo.UpdateCatalog(ctx, restaurantID, func(c Catalog) (Catalog, error) {
		next := make(Catalog, 0, len(c))
		for _, item := range c {
			if item.ID != itemID {
				next = append(next, item)
			}
		}
		return next, nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "inventory item deleted",
		"restaurant_id", restaurantID,
		"item_id", itemID,
	)

	return nil
}

// BulkAdd merges a batch of candidate rows into the catalog. Each row is
// validated independently; rows failing structural validation are dropped
// silently. Returns the count actually added.
func (s *Service) BulkAdd(ctx context.Context, restaurantID string, rows []NewItemInput) (int, error) {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		item, err := buildItem(row)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	if len(items) > 0 {
		_, err := s.repo.UpdateCatalog(ctx, restaurantID, func(c Catalog) (Catalog, error) {
			next := make(Catalog, 0, len(c)+len(items))
			next = append(next, items...)
			next = append(next, c...)
			return next, nil
		})
		if err != nil {
			return 0, err
		}
	}

	logger.Info(ctx, "bulk add merged into catalog",
		"restaurant_id", restaurantID,
		"received", len(rows),
		"added", len(items),
	)

	return len(items), nil
}

// View returns a timeframe-filtered view of the catalog.
// lowStockThreshold applies to the daily view only; pass
// DefaultLowStockFilter when the caller does not override it.
func (s *Service) View(ctx context.Context, restaurantID string, tf Timeframe, lowStockThreshold int) (Catalog, error) {
	catalog, err := s.repo.Catalog(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(tf, lowStockThreshold), nil
}
