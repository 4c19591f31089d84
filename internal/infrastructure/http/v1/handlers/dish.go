package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/costing"
	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
	"github.com/techbytecraft/QSR/internal/infrastructure/http/v1/dto"
)

// DishHandler handles menu reads, recipe edits and cost derivations.
type DishHandler struct {
	*BaseHandler
	service *dish.Service
	store   *restaurant.Store
}

// NewDishHandler creates a new dish handler.
func NewDishHandler(base *BaseHandler, service *dish.Service, store *restaurant.Store) *DishHandler {
	return &DishHandler{BaseHandler: base, service: service, store: store}
}

// List handles GET /restaurants/:rid/dishes
// Each dish carries its cost derived against the same catalog snapshot.
func (h *DishHandler) List(c *gin.Context) {
	r, err := h.store.Get(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMenuWithCosts(r.Dishes, costing.MenuCosts(r.Dishes, r.Inventory)))
}

// Get handles GET /restaurants/:rid/dishes/:did
func (h *DishHandler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Param("rid"), c.Param("did"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDish(d))
}

// AddIngredient handles POST /restaurants/:rid/dishes/:did/ingredients
func (h *DishHandler) AddIngredient(c *gin.Context) {
	var req dto.AddIngredientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	d, err := h.service.AddIngredient(c.Request.Context(),
		c.Param("rid"), c.Param("did"), req.InventoryItemID, req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDish(d))
}

// RemoveIngredient handles DELETE /restaurants/:rid/dishes/:did/ingredients/:iid
func (h *DishHandler) RemoveIngredient(c *gin.Context) {
	d, err := h.service.RemoveIngredient(c.Request.Context(),
		c.Param("rid"), c.Param("did"), c.Param("iid"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDish(d))
}

// Cost handles GET /restaurants/:rid/dishes/:did/cost
// Cost and breakdown come from the same snapshot, so the numbers agree.
func (h *DishHandler) Cost(c *gin.Context) {
	r, err := h.store.Get(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}

	d, ok := r.Dishes.Find(c.Param("did"))
	if !ok {
		h.Error(c, notFoundDish(c.Param("did")))
		return
	}

	idx := r.Inventory.Index()
	subtotals := make([]dto.SubtotalResponse, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		sub, ok := costing.IngredientSubtotal(ing, idx)
		if !ok {
			continue
		}
		subtotals = append(subtotals, dto.SubtotalResponse{
			InventoryItemID: ing.InventoryID,
			Name:            idx[ing.InventoryID].Name,
			Quantity:        ing.Quantity,
			Subtotal:        types.MoneyFloat(sub),
		})
	}

	h.OK(c, dto.DishCostResponse{
		DishID:    d.ID,
		Cost:      types.MoneyFloat(costing.DishCost(d, idx)),
		Subtotals: subtotals,
	})
}

// Breakdown handles GET /restaurants/:rid/dishes/:did/breakdown
func (h *DishHandler) Breakdown(c *gin.Context) {
	r, err := h.store.Get(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}

	d, ok := r.Dishes.Find(c.Param("did"))
	if !ok {
		h.Error(c, notFoundDish(c.Param("did")))
		return
	}

	h.OK(c, dto.FromBreakdown(costing.Breakdown(d, r.Inventory)))
}

func notFoundDish(id string) error {
	return apperror.NewNotFound("dish", id)
}
