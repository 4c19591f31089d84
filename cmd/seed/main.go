// Package main provides a CLI tool for seeding storage with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
	"github.com/techbytecraft/QSR/internal/infrastructure/storage/postgres"
	"github.com/techbytecraft/QSR/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	repo := postgres.NewRestaurantRepo(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalw("failed to ensure schema", "error", err)
	}

	store := restaurant.NewStore(repo)
	for _, r := range demoRestaurants() {
		if err := store.Create(ctx, r); err != nil {
			if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeConflict {
				log.Infow("restaurant already seeded, skipping", "id", r.ID)
				continue
			}
			log.Fatalw("failed to seed restaurant", "id", r.ID, "error", err)
		}
		log.Infow("seeded restaurant", "id", r.ID, "name", r.Name)
	}

	log.Info("seeding complete")
}

func item(id, name string, stock int, unitCost float64) inventory.Item {
	return inventory.Item{
		ID:       id,
		Name:     name,
		Stock:    stock,
		UnitCost: types.NewMoney(unitCost),
		Status:   inventory.Classify(stock),
	}
}

func demoRestaurants() []*restaurant.Restaurant {
	return []*restaurant.Restaurant{
		{
			ID:   "rest_1",
			Name: "Downtown Diner",
			Inventory: inventory.Catalog{
				item("1", "Burger Buns", 120, 0.5),
				item("2", "Patties", 80, 1.2),
				item("3", "Lettuce Heads", 30, 0.8),
				item("4", "Cheese Slices", 200, 0.3),
				item("5", "Tomato Crates", 15, 15),
				item("6", "French Fries (frozen)", 0, 2.5),
				item("7", "Soda Syrup", 50, 10),
			},
			Tasks: []restaurant.Task{
				{ID: 1, Text: "Review Q2 sales report", Completed: true},
				{ID: 2, Text: "Plan weekly staff meeting for Downtown"},
				{ID: 3, Text: "Check inventory for new menu items"},
			},
			NextTaskID: 3,
			Dishes: dish.Menu{
				{
					ID:   "dish_1",
					Name: "Classic Cheeseburger",
					Ingredients: []dish.Ingredient{
						{InventoryID: "2", Quantity: 1},
						{InventoryID: "1", Quantity: 2},
						{InventoryID: "4", Quantity: 2},
					},
				},
				{
					ID:   "dish_2",
					Name: "Deluxe Burger",
					Ingredients: []dish.Ingredient{
						{InventoryID: "2", Quantity: 1},
						{InventoryID: "1", Quantity: 2},
						{InventoryID: "4", Quantity: 2},
						{InventoryID: "3", Quantity: 0.1},
						{InventoryID: "5", Quantity: 0.05},
					},
				},
			},
			Sales: restaurant.Sales{
				Monthly: []restaurant.ForecastPoint{
					{Period: "Jan", Forecast: 4000, Actual: 4500},
					{Period: "Feb", Forecast: 3000, Actual: 2800},
					{Period: "Mar", Forecast: 5000, Actual: 5200},
					{Period: "Apr", Forecast: 4500, Actual: 4000},
					{Period: "May", Forecast: 6000, Actual: 6500},
					{Period: "Jun", Forecast: 5500, Actual: 5800},
				},
				Weekly: []restaurant.ForecastPoint{
					{Period: "W1", Forecast: 1000, Actual: 1100},
					{Period: "W2", Forecast: 900, Actual: 850},
					{Period: "W3", Forecast: 1200, Actual: 1300},
					{Period: "W4", Forecast: 1100, Actual: 1000},
				},
				Daily: []restaurant.ForecastPoint{
					{Period: "Mon", Forecast: 200, Actual: 220},
					{Period: "Tue", Forecast: 180, Actual: 170},
					{Period: "Wed", Forecast: 250, Actual: 260},
				},
			},
			Financials: restaurant.Financials{
				Investment:       250000,
				MonthlyReturn:    15000,
				AnnualReturn:     180000,
				Profit:           12300,
				ProfitChange:     8.2,
				ProfitChangeType: "increase",
			},
			YearlyComparison: []restaurant.YearlyComparisonPoint{
				{Name: "Q1", LastYear: 10500, ThisYear: 12500},
				{Name: "Q2", LastYear: 15500, ThisYear: 16300},
				{Name: "Q3", LastYear: 14000, ThisYear: 15800},
				{Name: "Q4", LastYear: 16500, ThisYear: 18200},
			},
		},
		{
			ID:   "rest_2",
			Name: "Uptown Grille",
			Inventory: inventory.Catalog{
				item("10", "Artisan Bread", 90, 1.5),
				item("11", "Gourmet Patties", 75, 2.8),
				item("12", "Arugula", 40, 2.0),
				item("13", "Swiss Cheese", 150, 0.8),
				item("14", "Truffle Oil", 10, 25),
				item("15", "Sweet Potato Fries", 80, 3.0),
			},
			Tasks: []restaurant.Task{
				{ID: 101, Text: "Finalize marketing campaign for Uptown"},
				{ID: 102, Text: "Hire new evening shift lead"},
				{ID: 103, Text: "Renegotiate with beverage supplier", Completed: true},
			},
			NextTaskID: 103,
			Dishes: dish.Menu{
				{
					ID:   "dish_10",
					Name: "Gourmet Truffle Burger",
					Ingredients: []dish.Ingredient{
						{InventoryID: "11", Quantity: 1},
						{InventoryID: "10", Quantity: 2},
						{InventoryID: "13", Quantity: 4},
						{InventoryID: "12", Quantity: 0.2},
						{InventoryID: "14", Quantity: 0.01},
					},
				},
			},
			Sales: restaurant.Sales{
				Monthly: []restaurant.ForecastPoint{
					{Period: "Jan", Forecast: 8000, Actual: 8200},
					{Period: "Feb", Forecast: 7500, Actual: 7800},
					{Period: "Mar", Forecast: 9000, Actual: 8500},
					{Period: "Apr", Forecast: 8800, Actual: 9200},
					{Period: "May", Forecast: 9500, Actual: 9400},
					{Period: "Jun", Forecast: 9200, Actual: 9800},
				},
				Weekly: []restaurant.ForecastPoint{
					{Period: "W1", Forecast: 2000, Actual: 2100},
					{Period: "W2", Forecast: 1900, Actual: 1850},
					{Period: "W3", Forecast: 2200, Actual: 2300},
					{Period: "W4", Forecast: 2100, Actual: 2000},
				},
				Daily: []restaurant.ForecastPoint{
					{Period: "Mon", Forecast: 400, Actual: 420},
					{Period: "Tue", Forecast: 380, Actual: 370},
					{Period: "Wed", Forecast: 450, Actual: 460},
				},
			},
			Financials: restaurant.Financials{
				Investment:       750000,
				MonthlyReturn:    45000,
				AnnualReturn:     540000,
				Profit:           38500,
				ProfitChange:     -1.5,
				ProfitChangeType: "decrease",
			},
			YearlyComparison: []restaurant.YearlyComparisonPoint{
				{Name: "Q1", LastYear: 23000, ThisYear: 24500},
				{Name: "Q2", LastYear: 26500, ThisYear: 27100},
				{Name: "Q3", LastYear: 25000, ThisYear: 26500},
				{Name: "Q4", LastYear: 28000, ThisYear: 31000},
			},
		},
	}
}
