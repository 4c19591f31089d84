package dto

import (
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/costing"
	"github.com/techbytecraft/QSR/internal/domain/dish"
)

// AddIngredientRequest appends one ingredient line to a dish.
type AddIngredientRequest struct {
	InventoryItemID string  `json:"inventoryItemId" binding:"required"`
	Quantity        float64 `json:"quantity" binding:"required"`
}

// IngredientResponse is one line of a dish's recipe.
type IngredientResponse struct {
	InventoryItemID string  `json:"inventoryItemId"`
	Quantity        float64 `json:"quantity"`
}

// DishResponse is one menu entry.
type DishResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// FromDish converts a domain dish.
func FromDish(d dish.Dish) DishResponse {
	ings := make([]IngredientResponse, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		ings = append(ings, IngredientResponse{
			InventoryItemID: ing.InventoryID,
			Quantity:        ing.Quantity,
		})
	}
	return DishResponse{ID: d.ID, Name: d.Name, Ingredients: ings}
}

// FromMenu converts a menu.
func FromMenu(m dish.Menu) []DishResponse {
	out := make([]DishResponse, 0, len(m))
	for _, d := range m {
		out = append(out, FromDish(d))
	}
	return out
}

// DishWithCostResponse is a menu entry enriched with its derived cost.
type DishWithCostResponse struct {
	DishResponse
	Cost float64 `json:"cost"`
}

// FromMenuWithCosts converts a menu, attaching per-dish costs.
func FromMenuWithCosts(m dish.Menu, costs map[string]types.Money) []DishWithCostResponse {
	out := make([]DishWithCostResponse, 0, len(m))
	for _, d := range m {
		out = append(out, DishWithCostResponse{
			DishResponse: FromDish(d),
			Cost:         types.MoneyFloat(costs[d.ID]),
		})
	}
	return out
}

// SubtotalResponse is one resolvable recipe line with its cost contribution.
type SubtotalResponse struct {
	InventoryItemID string  `json:"inventoryItemId"`
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
}

// DishCostResponse is a dish's derived production cost.
type DishCostResponse struct {
	DishID    string             `json:"dishId"`
	Cost      float64            `json:"cost"`
	Subtotals []SubtotalResponse `json:"subtotals"`
}

// BreakdownEntryResponse is one row of a cost breakdown chart.
type BreakdownEntryResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
}

// FromBreakdown converts breakdown entries.
func FromBreakdown(entries []costing.Entry) []BreakdownEntryResponse {
	out := make([]BreakdownEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, BreakdownEntryResponse{
			Name:  e.Name,
			Value: types.MoneyFloat(e.Value),
			Share: e.Share,
		})
	}
	return out
}
