package v1

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
	"github.com/techbytecraft/QSR/internal/infrastructure/storage/memory"
	"github.com/techbytecraft/QSR/internal/insight"
	"github.com/techbytecraft/QSR/pkg/logger"
)

type cannedModel struct {
	response string
}

func (m *cannedModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.response}}}, nil
}

func (m *cannedModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return m.response, nil
}

func newTestRouter(t *testing.T, model llms.Model) (*gin.Engine, *restaurant.Store) {
	t.Helper()

	store := restaurant.NewStore(memory.NewRestaurantRepo())
	err := store.Create(context.Background(), &restaurant.Restaurant{
		ID:   "r1",
		Name: "The Golden Spoon",
		Inventory: inventory.Catalog{
			{ID: "bun", Name: "Bun", Stock: 50, UnitCost: types.NewMoney(1), Status: inventory.StatusInStock},
			{ID: "patty", Name: "Patty", Stock: 5, UnitCost: types.NewMoney(2), Status: inventory.StatusLowStock},
		},
		Dishes: dish.Menu{
			{ID: "d1", Name: "Burger", Ingredients: []dish.Ingredient{
				{InventoryID: "bun", Quantity: 1},
				{InventoryID: "patty", Quantity: 2},
			}},
		},
		Sales: restaurant.Sales{
			Monthly: []restaurant.ForecastPoint{{Period: "Jan", Actual: 1000, Forecast: 900}},
		},
		Financials: restaurant.Financials{Profit: 5000, ProfitChangeType: "increase"},
	})
	require.NoError(t, err)

	log, err := logger.New(logger.Config{Level: "error", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Store:    store,
		Logger:   log,
		Insights: insight.NewService(model, store),
	})
	return router, store
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListRestaurants(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/api/v1/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]any
	decode(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "The Golden Spoon", got[0]["name"])
}

func TestGetRestaurant(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/api/v1/restaurants/r1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	decode(t, w, &got)
	assert.Equal(t, "The Golden Spoon", got["name"])
	assert.Len(t, got["inventory"], 2)
	assert.Len(t, got["dishes"], 1)

	w = do(t, router, http.MethodGet, "/api/v1/restaurants/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInventoryEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	t.Run("add item", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/inventory", map[string]any{
			"name": "Saffron", "stock": 3, "unitCost": 9.999,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		decode(t, w, &got)
		assert.Equal(t, "Low Stock", got["status"])
		assert.Equal(t, 10.0, got["unitCost"], "unit cost rounds to two places at the edge")
		assert.NotEmpty(t, got["id"])
	})

	t.Run("validation error is structured", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/inventory", map[string]any{
			"name": "Bad", "stock": -1, "unitCost": 1,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var got map[string]any
		decode(t, w, &got)
		assert.Equal(t, "VALIDATION_ERROR", got["code"])
	})

	t.Run("daily view filters low stock", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/api/v1/restaurants/r1/inventory?timeframe=daily&threshold=20", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			Items []map[string]any `json:"items"`
		}
		decode(t, w, &got)
		for _, item := range got.Items {
			assert.Less(t, item["stock"].(float64), 20.0)
		}
	})

	t.Run("bulk add drops invalid rows", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/inventory/bulk", map[string]any{
			"items": []map[string]any{
				{"name": "Tomatoes", "stock": 50, "unitCost": 0.8},
				{"name": "", "stock": 10, "unitCost": 1},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		decode(t, w, &got)
		assert.Equal(t, 2.0, got["received"])
		assert.Equal(t, 1.0, got["added"])
		assert.Equal(t, 1.0, got["dropped"])
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		w := do(t, router, http.MethodDelete, "/api/v1/restaurants/r1/inventory/bun", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = do(t, router, http.MethodDelete, "/api/v1/restaurants/r1/inventory/bun", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/api/v1/restaurants/ghost/inventory", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDishEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	t.Run("list carries derived costs", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/api/v1/restaurants/r1/dishes", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []map[string]any
		decode(t, w, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Burger", got[0]["name"])
		assert.Equal(t, 5.0, got[0]["cost"])
	})

	t.Run("cost uses the live catalog", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/api/v1/restaurants/r1/dishes/d1/cost", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			Cost      float64          `json:"cost"`
			Subtotals []map[string]any `json:"subtotals"`
		}
		decode(t, w, &got)
		// 1*1.00 + 2*2.00
		assert.Equal(t, 5.0, got.Cost)
		require.Len(t, got.Subtotals, 2)
		assert.Equal(t, "Bun", got.Subtotals[0]["name"])
		assert.Equal(t, 4.0, got.Subtotals[1]["subtotal"])
	})

	t.Run("breakdown is sorted largest first", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/api/v1/restaurants/r1/dishes/d1/breakdown", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []map[string]any
		decode(t, w, &got)
		require.Len(t, got, 2)
		assert.Equal(t, "Patty", got[0]["name"])
		assert.Equal(t, "Bun", got[1]["name"])
	})

	t.Run("duplicate ingredient is a 422", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/dishes/d1/ingredients", map[string]any{
			"inventoryItemId": "bun", "quantity": 2,
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var got map[string]any
		decode(t, w, &got)
		assert.Equal(t, "DUPLICATE_INGREDIENT", got["code"])
	})

	t.Run("unknown reference is a 422", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/dishes/d1/ingredients", map[string]any{
			"inventoryItemId": "ghost", "quantity": 2,
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var got map[string]any
		decode(t, w, &got)
		assert.Equal(t, "UNKNOWN_INVENTORY_REFERENCE", got["code"])
	})

	t.Run("deleting an item hides it from the breakdown", func(t *testing.T) {
		w := do(t, router, http.MethodDelete, "/api/v1/restaurants/r1/inventory/bun", nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = do(t, router, http.MethodGet, "/api/v1/restaurants/r1/dishes/d1/breakdown", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []map[string]any
		decode(t, w, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Patty", got[0]["name"])
	})
}

func TestTaskEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/tasks", map[string]any{"text": "Order napkins"})
	require.Equal(t, http.StatusOK, w.Code)

	var task map[string]any
	decode(t, w, &task)
	id := int64(task["id"].(float64))

	w = do(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/restaurants/r1/tasks/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &task)
	assert.Equal(t, true, task["completed"])

	w = do(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/restaurants/r1/tasks/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/restaurants/r1/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []map[string]any
	decode(t, w, &tasks)
	assert.Empty(t, tasks)
}

func TestStatsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/api/v1/restaurants/r1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	decode(t, w, &got)
	assert.Equal(t, 1000.0, got["totalRevenue"])
	// 50*1.00 + 5*2.00
	assert.Equal(t, 60.0, got["inventoryValue"])
	assert.Equal(t, 5000.0, got["profit"])
}

func TestInsightEndpoints(t *testing.T) {
	t.Run("disabled insights degrade with 502", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/insights/costs", nil)
		require.Equal(t, http.StatusBadGateway, w.Code)

		var got map[string]any
		decode(t, w, &got)
		assert.Contains(t, got["message"], "not configured")
	})

	t.Run("enabled insights return the analysis", func(t *testing.T) {
		router, _ := newTestRouter(t, &cannedModel{response: "## Analysis"})

		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/insights/report", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		decode(t, w, &got)
		assert.Equal(t, "## Analysis", got["insight"])
	})

	t.Run("invoice parse returns candidate rows", func(t *testing.T) {
		router, store := newTestRouter(t, &cannedModel{
			response: `[{"name":"Flour","stock":20,"unitCost":1.5},{"stock":1,"unitCost":1}]`,
		})

		payload := base64.StdEncoding.EncodeToString([]byte("fake image"))
		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/invoice/parse", map[string]any{
			"mimeType": "image/png", "data": payload,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			Items []map[string]any `json:"items"`
		}
		decode(t, w, &got)
		require.Len(t, got.Items, 1, "incomplete rows are dropped")
		assert.Equal(t, "Flour", got.Items[0]["name"])

		snap, err := store.Get(context.Background(), "r1")
		require.NoError(t, err)
		assert.Len(t, snap.Inventory, 2, "nothing merged without commit")
	})

	t.Run("invoice parse with commit merges extracted rows", func(t *testing.T) {
		router, store := newTestRouter(t, &cannedModel{
			response: `[{"name":"Flour","stock":20,"unitCost":1.5},{"stock":1,"unitCost":1}]`,
		})

		payload := base64.StdEncoding.EncodeToString([]byte("fake image"))
		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/invoice/parse?commit=true", map[string]any{
			"mimeType": "image/png", "data": payload,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		decode(t, w, &got)
		assert.Equal(t, 1.0, got["added"])

		snap, err := store.Get(context.Background(), "r1")
		require.NoError(t, err)
		assert.Equal(t, "Flour", snap.Inventory[0].Name, "merged rows are prepended")
	})

	t.Run("invalid base64 is a 400", func(t *testing.T) {
		router, _ := newTestRouter(t, &cannedModel{response: "[]"})

		w := do(t, router, http.MethodPost, "/api/v1/restaurants/r1/invoice/parse", map[string]any{
			"mimeType": "image/png", "data": "not-base64!!!",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
