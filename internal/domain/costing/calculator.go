// Package costing derives dish costs and cost breakdowns from a dish's bill
// of materials and the inventory catalog. Everything here is a pure
// derivation over one snapshot: no state, exact decimal arithmetic, rounding
// left to the presentation layer.
package costing

import (
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
)

// IngredientSubtotal returns quantity × unit cost for one ingredient line.
// The second return is false when the reference does not resolve against the
// catalog; dangling lines contribute nothing and are hidden, never shown as
// zero.
func IngredientSubtotal(ing dish.Ingredient, idx map[string]inventory.Item) (types.Money, bool) {
	item, ok := idx[ing.InventoryID]
	if !ok {
		return types.Zero(), false
	}
	return item.UnitCost.Mul(types.NewMoney(ing.Quantity)), true
}

// DishCost returns the total cost of a dish against the given catalog index.
// Dangling references are skipped. A dish with no resolvable ingredients
// costs zero.
func DishCost(d dish.Dish, idx map[string]inventory.Item) types.Money {
	total := types.Zero()
	for _, ing := range d.Ingredients {
		if sub, ok := IngredientSubtotal(ing, idx); ok {
			total = total.Add(sub)
		}
	}
	return total
}

// MenuCosts returns the cost of every dish in the menu against one catalog
// snapshot, keyed by dish id.
func MenuCosts(menu dish.Menu, catalog inventory.Catalog) map[string]types.Money {
	idx := catalog.Index()
	out := make(map[string]types.Money, len(menu))
	for _, d := range menu {
		out[d.ID] = DishCost(d, idx)
	}
	return out
}
