// Package dish provides the menu dish aggregate: each dish carries its
// bill of materials as ingredient lines referencing inventory items.
package dish

import (
	"context"

	"github.com/techbytecraft/QSR/internal/core/apperror"
)

// Ingredient is one line of a dish's bill of materials. InventoryID is a
// reference by id, never a copy: unit-cost changes in the catalog flow into
// dish costs immediately. Quantity is in the inventory item's native unit.
type Ingredient struct {
	InventoryID string  `json:"inventoryItemId"`
	Quantity    float64 `json:"quantity"`
}

// Dish is a menu entry with its recipe.
type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Validate implements the dish invariants.
func (d *Dish) Validate(ctx context.Context) error {
	if d.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	seen := make(map[string]struct{}, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		if ing.Quantity <= 0 {
			return apperror.NewValidation("ingredient quantity must be positive").
				WithDetail("inventoryId", ing.InventoryID)
		}
		if _, ok := seen[ing.InventoryID]; ok {
			return apperror.NewDuplicateIngredient(ing.InventoryID)
		}
		seen[ing.InventoryID] = struct{}{}
	}
	return nil
}

// HasIngredient reports whether the dish already references an inventory item.
func (d *Dish) HasIngredient(inventoryID string) bool {
	for _, ing := range d.Ingredients {
		if ing.InventoryID == inventoryID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the dish.
func (d Dish) Clone() Dish {
	out := d
	out.Ingredients = make([]Ingredient, len(d.Ingredients))
	copy(out.Ingredients, d.Ingredients)
	return out
}

// Menu is the ordered list of a restaurant's dishes.
type Menu []Dish

// Find resolves a dish by id.
func (m Menu) Find(id string) (Dish, bool) {
	for _, d := range m {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}
