package restaurant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
	"github.com/techbytecraft/QSR/internal/infrastructure/storage/memory"
)

func newTestStore(t *testing.T) *restaurant.Store {
	t.Helper()

	store := restaurant.NewStore(memory.NewRestaurantRepo())
	err := store.Create(context.Background(), &restaurant.Restaurant{
		ID:   "r1",
		Name: "The Golden Spoon",
		Inventory: inventory.Catalog{
			{ID: "bun", Name: "Bun", Stock: 50, UnitCost: types.NewMoney(1), Status: inventory.StatusInStock},
		},
		Dishes: dish.Menu{
			{ID: "d1", Name: "Burger", Ingredients: []dish.Ingredient{
				{InventoryID: "bun", Quantity: 1},
			}},
		},
	})
	require.NoError(t, err)
	return store
}

func TestStoreCreate(t *testing.T) {
	store := newTestStore(t)

	err := store.Create(context.Background(), &restaurant.Restaurant{ID: "r1", Name: "Duplicate"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestStoreUpdateCatalogBumpsVersion(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	before, err := store.Get(ctx, "r1")
	require.NoError(t, err)

	_, err = store.UpdateCatalog(ctx, "r1", func(c inventory.Catalog) (inventory.Catalog, error) {
		return append(inventory.Catalog{
			{ID: "patty", Name: "Patty", Stock: 20, UnitCost: types.NewMoney(2), Status: inventory.StatusLowStock},
		}, c...), nil
	})
	require.NoError(t, err)

	after, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, before.CatalogVersion+1, after.CatalogVersion)
	assert.Len(t, after.Inventory, 2)
}

func TestStoreFailedUpdateLeavesSnapshotUntouched(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.UpdateDish(ctx, "r1", "d1", func(d dish.Dish, _ inventory.Catalog) (dish.Dish, error) {
		d.Ingredients = nil
		return d, apperror.NewValidation("nope")
	})
	require.Error(t, err)

	snap, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, snap.Dishes[0].Ingredients, 1, "rejected edit must not leak into the snapshot")
}

func TestStoreUpdateDishUnknownDish(t *testing.T) {
	_, err := newTestStore(t).UpdateDish(context.Background(), "r1", "ghost",
		func(d dish.Dish, _ inventory.Catalog) (dish.Dish, error) { return d, nil })
	assert.True(t, apperror.IsNotFound(err))
}

func TestStoreTasks(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.AddTask(ctx, "r1", "Order napkins")
	require.NoError(t, err)
	second, err := store.AddTask(ctx, "r1", "Clean fryer")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	toggled, err := store.ToggleTask(ctx, "r1", first.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = store.ToggleTask(ctx, "r1", first.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	require.NoError(t, store.DeleteTask(ctx, "r1", second.ID))
	require.NoError(t, store.DeleteTask(ctx, "r1", second.ID), "delete is idempotent")

	snap, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "Order napkins", snap.Tasks[0].Text)

	_, err = store.AddTask(ctx, "r1", "")
	assert.True(t, apperror.IsValidation(err))
}

func TestStoreSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	snap, err := store.Get(ctx, "r1")
	require.NoError(t, err)

	// Mutating a returned snapshot must not affect stored state.
	snap.Inventory[0].Stock = 0
	snap.Dishes[0].Ingredients[0].Quantity = 99

	fresh, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 50, fresh.Inventory[0].Stock)
	assert.Equal(t, 1.0, fresh.Dishes[0].Ingredients[0].Quantity)
}
