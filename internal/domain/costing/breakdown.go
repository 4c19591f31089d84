package costing

import (
	"sort"

	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
)

// TopN is how many named entries a breakdown keeps before the remainder is
// collapsed into a single aggregate row.
const TopN = 4

// OtherLabel names the aggregate remainder entry.
const OtherLabel = "Other Ingredients"

// Entry is one row of a cost breakdown.
type Entry struct {
	Name  string      `json:"name"`
	Value types.Money `json:"value"`
	Share float64     `json:"share"`
}

// Breakdown returns the dish's cost composition: resolvable ingredient lines
// with positive subtotals, largest first. When more than TopN+1 rows would
// result, the top TopN are kept and the rest collapse into an OtherLabel
// row, so the output never exceeds TopN+1 entries. The sort is stable, so
// equal subtotals keep their bill-of-materials order.
func Breakdown(d dish.Dish, catalog inventory.Catalog) []Entry {
	idx := catalog.Index()

	rows := make([]Entry, 0, len(d.Ingredients))
	total := types.Zero()
	for _, ing := range d.Ingredients {
		sub, ok := IngredientSubtotal(ing, idx)
		if !ok || !sub.IsPositive() {
			continue
		}
		rows = append(rows, Entry{Name: idx[ing.InventoryID].Name, Value: sub})
		total = total.Add(sub)
	}

	if total.IsZero() {
		return []Entry{}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value.GreaterThan(rows[j].Value)
	})

	if len(rows) > TopN+1 {
		rest := types.Zero()
		for _, r := range rows[TopN:] {
			rest = rest.Add(r.Value)
		}
		rows = append(rows[:TopN:TopN], Entry{Name: OtherLabel, Value: rest})
	}

	for i := range rows {
		rows[i].Share = rows[i].Value.Div(total).InexactFloat64()
	}

	return rows
}
