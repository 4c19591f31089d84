// Package reports derives dashboard figures from a restaurant snapshot.
// All derivations are read-only views over one snapshot.
package reports

import (
	"context"

	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/costing"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
)

// DashboardStats is the headline figure set for one restaurant.
type DashboardStats struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	InventoryValue   float64 `json:"inventoryValue"`
	Profit           float64 `json:"profit"`
	ProfitChange     float64 `json:"profitChange"`
	ProfitChangeType string  `json:"profitChangeType"`
	LowStockCount    int     `json:"lowStockCount"`
	OpenTasks        int     `json:"openTasks"`
}

// DishCostLine is one dish with its derived cost, as fed to reports and
// analysis prompts.
type DishCostLine struct {
	Name string      `json:"name"`
	Cost types.Money `json:"cost"`
}

// Snapshots is the read port the service needs.
type Snapshots interface {
	Get(ctx context.Context, id string) (*restaurant.Restaurant, error)
}

// Service computes dashboard statistics.
type Service struct {
	store Snapshots
}

// NewService creates a reports service.
func NewService(store Snapshots) *Service {
	return &Service{store: store}
}

// Stats derives the dashboard headline figures. Total revenue is the sum of
// monthly actuals; inventory value is stock × unit cost over the catalog;
// profit figures pass through from the financial overview.
func (s *Service) Stats(ctx context.Context, restaurantID string) (DashboardStats, error) {
	r, err := s.store.Get(ctx, restaurantID)
	if err != nil {
		return DashboardStats{}, err
	}

	revenue := 0.0
	for _, p := range r.Sales.Monthly {
		revenue += p.Actual
	}

	lowStock := 0
	for _, item := range r.Inventory {
		if item.Status != inventory.StatusInStock {
			lowStock++
		}
	}

	open := 0
	for _, t := range r.Tasks {
		if !t.Completed {
			open++
		}
	}

	return DashboardStats{
		TotalRevenue:     revenue,
		InventoryValue:   types.MoneyFloat(r.Inventory.TotalValue()),
		Profit:           r.Financials.Profit,
		ProfitChange:     r.Financials.ProfitChange,
		ProfitChangeType: r.Financials.ProfitChangeType,
		LowStockCount:    lowStock,
		OpenTasks:        open,
	}, nil
}

// DishCosts returns every dish with its cost against the snapshot's catalog.
func DishCosts(r *restaurant.Restaurant) []DishCostLine {
	costs := costing.MenuCosts(r.Dishes, r.Inventory)
	out := make([]DishCostLine, 0, len(r.Dishes))
	for _, d := range r.Dishes {
		out = append(out, DishCostLine{Name: d.Name, Cost: costs[d.ID]})
	}
	return out
}
