package dish

import (
	"context"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/pkg/logger"
)

// Repository gives the service access to a restaurant's menu. UpdateDish
// runs fn under the mutation lock with the catalog of the same snapshot, so
// reference checks and the write are atomic.
type Repository interface {
	// Menu returns the current menu snapshot for a restaurant.
	Menu(ctx context.Context, restaurantID string) (Menu, error)

	// UpdateDish applies fn to the named dish and swaps the returned dish
	// into a new snapshot. Returns NewNotFound when the dish is absent.
	UpdateDish(ctx context.Context, restaurantID, dishID string, fn func(Dish, inventory.Catalog) (Dish, error)) (Dish, error)
}

// Service provides bill-of-materials edits for a restaurant's menu.
type Service struct {
	repo Repository
}

// NewService creates a new dish service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns a dish by id.
func (s *Service) Get(ctx context.Context, restaurantID, dishID string) (Dish, error) {
	menu, err := s.repo.Menu(ctx, restaurantID)
	if err != nil {
		return Dish{}, err
	}
	d, ok := menu.Find(dishID)
	if !ok {
		return Dish{}, apperror.NewNotFound("dish", dishID)
	}
	return d, nil
}

// AddIngredient appends an ingredient line to a dish. The reference must
// resolve against the current catalog, the quantity must be positive and
// finite, and the dish must not already carry the ingredient. Quantity
// changes go through RemoveIngredient then AddIngredient.
func (s *Service) AddIngredient(ctx context.Context, restaurantID, dishID, inventoryID string, quantity float64) (Dish, error) {
	if !types.IsFinite(quantity) || quantity <= 0 {
		return Dish{}, apperror.NewValidation("quantity must be a positive number").
			WithDetail("inventoryId", inventoryID)
	}

	updated, err := s.repo.UpdateDish(ctx, restaurantID, dishID, func(d Dish, catalog inventory.Catalog) (Dish, error) {
		if _, ok := catalog.Find(inventoryID); !ok {
			return Dish{}, apperror.NewUnknownReference(inventoryID)
		}
		if d.HasIngredient(inventoryID) {
			return Dish{}, apperror.NewDuplicateIngredient(inventoryID)
		}
		next := d.Clone()
		next.Ingredients = append(next.Ingredients, Ingredient{
			InventoryID: inventoryID,
			Quantity:    quantity,
		})
		return next, nil
	})
	if err != nil {
		return Dish{}, err
	}

	logger.Info(ctx, "ingredient added to dish",
		"restaurant_id", restaurantID,
		"dish_id", dishID,
		"inventory_id", inventoryID,
		"quantity", quantity,
	)

	return updated, nil
}

// RemoveIngredient removes the ingredient line referencing inventoryID.
// Removing an absent reference is a no-op, not an error.
func (s *Service) RemoveIngredient(ctx context.Context, restaurantID, dishID, inventoryID string) (Dish, error) {
	updated, err := s.repo.UpdateDish(ctx, restaurantID, dishID, func(d Dish, _ inventory.Catalog) (Dish, error) {
		next := d
		next.Ingredients = make([]Ingredient, 0, len(d.Ingredients))
		for _, ing := range d.Ingredients {
			if ing.InventoryID != inventoryID {
				next.Ingredients = append(next.Ingredients, ing)
			}
		}
		return next, nil
	})
	if err != nil {
		return Dish{}, err
	}

	logger.Info(ctx, "ingredient removed from dish",
		"restaurant_id", restaurantID,
		"dish_id", dishID,
		"inventory_id", inventoryID,
	)

	return updated, nil
}
