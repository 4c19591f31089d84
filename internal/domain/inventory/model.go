// Package inventory provides the per-restaurant inventory catalog:
// stock-status classification, item lifecycle, and valuation.
package inventory

import (
	"context"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/core/types"
)

// Status is the derived stock-status classification of an item.
type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// StatusThreshold is the fixed classification boundary: items with stock
// below it (and above zero) are Low Stock. It is independent of the
// user-adjustable display filter threshold (DefaultLowStockFilter).
const StatusThreshold = 40

// DefaultLowStockFilter is the default threshold for the low-stock display
// filter. It only affects the filtered "daily" view, never Status.
const DefaultLowStockFilter = 20

// Classify maps a stock quantity to its status. Pure and total.
func Classify(stock int) Status {
	switch {
	case stock == 0:
		return StatusOutOfStock
	case stock < StatusThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Item is a catalog entry. Status is always Classify(Stock); every write
// path that changes Stock must recompute it in the same operation.
type Item struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Stock    int         `json:"stock"`
	UnitCost types.Money `json:"unitCost"`
	Status   Status      `json:"status"`
}

// Validate implements the catalog invariants (name present, non-negative
// stock and cost).
func (i *Item) Validate(ctx context.Context) error {
	if i.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if i.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").
			WithDetail("field", "stock")
	}
	if i.UnitCost.IsNegative() {
		return apperror.NewValidation("unit cost cannot be negative").
			WithDetail("field", "unitCost")
	}
	return nil
}

// Value returns the total valuation of this item (stock × unit cost).
func (i Item) Value() types.Money {
	return i.UnitCost.Mul(types.NewMoney(float64(i.Stock)))
}

// Catalog is the ordered inventory of a restaurant, most-recent-first.
type Catalog []Item

// Find resolves an item by id.
func (c Catalog) Find(id string) (Item, bool) {
	for _, item := range c {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Index builds an id lookup map. Derivations that resolve many references
// build this once per snapshot instead of scanning repeatedly.
func (c Catalog) Index() map[string]Item {
	idx := make(map[string]Item, len(c))
	for _, item := range c {
		idx[item.ID] = item
	}
	return idx
}

// TotalValue returns the valuation of the whole catalog.
func (c Catalog) TotalValue() types.Money {
	total := types.Zero()
	for _, item := range c {
		total = total.Add(item.Value())
	}
	return total
}

// Timeframe selects a filtered view of the catalog.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// Filter returns the timeframe view of the catalog. The daily view shows
// items with stock below lowStockThreshold; the monthly view shows
// overstocked items (stock > 100); weekly shows everything. Filtering never
// touches Status.
func (c Catalog) Filter(tf Timeframe, lowStockThreshold int) Catalog {
	switch tf {
	case TimeframeDaily:
		out := make(Catalog, 0, len(c))
		for _, item := range c {
			if item.Stock < lowStockThreshold {
				out = append(out, item)
			}
		}
		return out
	case TimeframeMonthly:
		out := make(Catalog, 0, len(c))
		for _, item := range c {
			if item.Stock > 100 {
				out = append(out, item)
			}
		}
		return out
	default:
		return c
	}
}
