package dish

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
)

// fakeRepo holds one menu and one catalog in memory.
type fakeRepo struct {
	menu    Menu
	catalog inventory.Catalog
}

func (f *fakeRepo) Menu(_ context.Context, _ string) (Menu, error) {
	return f.menu, nil
}

func (f *fakeRepo) UpdateDish(_ context.Context, _, dishID string, fn func(Dish, inventory.Catalog) (Dish, error)) (Dish, error) {
	for i, d := range f.menu {
		if d.ID != dishID {
			continue
		}
		next, err := fn(d, f.catalog)
		if err != nil {
			return Dish{}, err
		}
		f.menu[i] = next
		return next, nil
	}
	return Dish{}, apperror.NewNotFound("dish", dishID)
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{
		menu: Menu{{ID: "d1", Name: "Burger", Ingredients: []Ingredient{
			{InventoryID: "bun", Quantity: 1},
		}}},
		catalog: inventory.Catalog{
			{ID: "bun", Name: "Bun", Stock: 50, UnitCost: types.NewMoney(1)},
			{ID: "patty", Name: "Patty", Stock: 50, UnitCost: types.NewMoney(2)},
		},
	}
	return NewService(repo), repo
}

func TestAddIngredient(t *testing.T) {
	ctx := context.Background()

	t.Run("appends at the tail", func(t *testing.T) {
		svc, repo := newTestService()

		got, err := svc.AddIngredient(ctx, "r1", "d1", "patty", 2)
		require.NoError(t, err)
		require.Len(t, got.Ingredients, 2)
		assert.Equal(t, "patty", got.Ingredients[1].InventoryID)
		assert.Equal(t, 2.0, got.Ingredients[1].Quantity)
		assert.Equal(t, got, repo.menu[0])
	})

	t.Run("rejects a duplicate and leaves the recipe unchanged", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.AddIngredient(ctx, "r1", "d1", "bun", 3)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeDuplicateIngredient, appErr.Code)

		require.Len(t, repo.menu[0].Ingredients, 1)
		assert.Equal(t, 1.0, repo.menu[0].Ingredients[0].Quantity, "quantity must not change")
	})

	t.Run("rejects an unknown inventory reference", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.AddIngredient(ctx, "r1", "d1", "ghost", 1)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeUnknownReference, appErr.Code)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.AddIngredient(ctx, "r1", "d1", "patty", 0)
		assert.True(t, apperror.IsValidation(err))

		_, err = svc.AddIngredient(ctx, "r1", "d1", "patty", -1)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("unknown dish", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.AddIngredient(ctx, "r1", "nope", "patty", 1)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestRemoveIngredient(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the referencing line", func(t *testing.T) {
		svc, repo := newTestService()

		got, err := svc.RemoveIngredient(ctx, "r1", "d1", "bun")
		require.NoError(t, err)
		assert.Empty(t, got.Ingredients)
		assert.Empty(t, repo.menu[0].Ingredients)
	})

	t.Run("absent reference is a no-op", func(t *testing.T) {
		svc, repo := newTestService()

		got, err := svc.RemoveIngredient(ctx, "r1", "d1", "ghost")
		require.NoError(t, err)
		assert.Len(t, got.Ingredients, 1)
		assert.Len(t, repo.menu[0].Ingredients, 1)
	})
}

func TestRemoveThenReAddChangesQuantity(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	_, err := svc.RemoveIngredient(ctx, "r1", "d1", "bun")
	require.NoError(t, err)

	got, err := svc.AddIngredient(ctx, "r1", "d1", "bun", 2)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, 2.0, got.Ingredients[0].Quantity)
	assert.Equal(t, got, repo.menu[0])
}

func TestDishValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate lines rejected", func(t *testing.T) {
		d := Dish{ID: "d1", Name: "Burger", Ingredients: []Ingredient{
			{InventoryID: "bun", Quantity: 1},
			{InventoryID: "bun", Quantity: 2},
		}}
		assert.Error(t, d.Validate(ctx))
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		d := Dish{ID: "d1", Name: "Burger", Ingredients: []Ingredient{
			{InventoryID: "bun", Quantity: 0},
		}}
		assert.Error(t, d.Validate(ctx))
	})
}
