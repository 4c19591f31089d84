package dto

import (
	"github.com/techbytecraft/QSR/internal/domain/reports"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
)

// RestaurantSummaryResponse lists a restaurant without its full state.
type RestaurantSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromRestaurantSummary converts a snapshot to its listing row.
func FromRestaurantSummary(r *restaurant.Restaurant) RestaurantSummaryResponse {
	return RestaurantSummaryResponse{ID: r.ID, Name: r.Name}
}

// FinancialsResponse is the partner financial overview.
type FinancialsResponse struct {
	Investment       float64 `json:"investment"`
	MonthlyReturn    float64 `json:"monthlyReturn"`
	AnnualReturn     float64 `json:"annualReturn"`
	Profit           float64 `json:"profit"`
	ProfitChange     float64 `json:"profitChange"`
	ProfitChangeType string  `json:"profitChangeType"`
}

// YearlyComparisonResponse compares one period across two years.
type YearlyComparisonResponse struct {
	Name     string  `json:"name"`
	LastYear float64 `json:"lastYear"`
	ThisYear float64 `json:"thisYear"`
}

// RestaurantResponse is the full state of one restaurant, as the dashboard
// loads it.
type RestaurantResponse struct {
	ID               string                     `json:"id"`
	Name             string                     `json:"name"`
	Inventory        []InventoryItemResponse    `json:"inventory"`
	Dishes           []DishResponse             `json:"dishes"`
	Tasks            []TaskResponse             `json:"tasks"`
	Sales            SalesResponse              `json:"salesData"`
	Financials       FinancialsResponse         `json:"financials"`
	YearlyComparison []YearlyComparisonResponse `json:"yearlyComparison"`
}

// SalesResponse carries the forecast series per timeframe.
type SalesResponse struct {
	Daily   []ForecastPointResponse `json:"daily"`
	Weekly  []ForecastPointResponse `json:"weekly"`
	Monthly []ForecastPointResponse `json:"monthly"`
}

// FromRestaurant converts a full snapshot.
func FromRestaurant(r *restaurant.Restaurant) RestaurantResponse {
	items := make([]InventoryItemResponse, 0, len(r.Inventory))
	for _, item := range r.Inventory {
		items = append(items, FromInventoryItem(item))
	}

	yearly := make([]YearlyComparisonResponse, 0, len(r.YearlyComparison))
	for _, p := range r.YearlyComparison {
		yearly = append(yearly, YearlyComparisonResponse(p))
	}

	return RestaurantResponse{
		ID:        r.ID,
		Name:      r.Name,
		Inventory: items,
		Dishes:    FromMenu(r.Dishes),
		Tasks:     FromTasks(r.Tasks),
		Sales: SalesResponse{
			Daily:   FromForecastPoints(r.Sales.Daily),
			Weekly:  FromForecastPoints(r.Sales.Weekly),
			Monthly: FromForecastPoints(r.Sales.Monthly),
		},
		Financials:       FinancialsResponse(r.Financials),
		YearlyComparison: yearly,
	}
}

// TaskResponse is one dashboard task.
type TaskResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// FromTask converts a domain task.
func FromTask(t restaurant.Task) TaskResponse {
	return TaskResponse{ID: t.ID, Text: t.Text, Completed: t.Completed}
}

// FromTasks converts a task list.
func FromTasks(tasks []restaurant.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}

// AddTaskRequest creates one task.
type AddTaskRequest struct {
	Text string `json:"text" binding:"required"`
}

// StatsResponse is the dashboard headline figure set.
type StatsResponse struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	InventoryValue   float64 `json:"inventoryValue"`
	Profit           float64 `json:"profit"`
	ProfitChange     float64 `json:"profitChange"`
	ProfitChangeType string  `json:"profitChangeType"`
	LowStockCount    int     `json:"lowStockCount"`
	OpenTasks        int     `json:"openTasks"`
}

// FromStats converts dashboard stats.
func FromStats(s reports.DashboardStats) StatsResponse {
	return StatsResponse(s)
}

// ForecastPointResponse is one sales period.
type ForecastPointResponse struct {
	Period   string  `json:"period"`
	Actual   float64 `json:"actual"`
	Forecast float64 `json:"forecast"`
}

// FromForecastPoints converts a sales series.
func FromForecastPoints(points []restaurant.ForecastPoint) []ForecastPointResponse {
	out := make([]ForecastPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, ForecastPointResponse(p))
	}
	return out
}
