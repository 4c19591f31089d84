// Package restaurant holds the per-restaurant state aggregate and the
// snapshot store that owns all mutations to it.
package restaurant

import (
	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
)

// Task is a to-do entry on the restaurant dashboard.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ForecastPoint is one period of sales data: what actually happened against
// what was forecast.
type ForecastPoint struct {
	Period   string  `json:"period"`
	Actual   float64 `json:"actual"`
	Forecast float64 `json:"forecast"`
}

// Sales carries the forecast series per timeframe.
type Sales struct {
	Daily   []ForecastPoint `json:"daily"`
	Weekly  []ForecastPoint `json:"weekly"`
	Monthly []ForecastPoint `json:"monthly"`
}

// Series returns the points for a timeframe, defaulting to monthly.
func (s Sales) Series(tf inventory.Timeframe) []ForecastPoint {
	switch tf {
	case inventory.TimeframeDaily:
		return s.Daily
	case inventory.TimeframeWeekly:
		return s.Weekly
	default:
		return s.Monthly
	}
}

// Financials is the partner financial overview.
type Financials struct {
	Investment       float64 `json:"investment"`
	MonthlyReturn    float64 `json:"monthlyReturn"`
	AnnualReturn     float64 `json:"annualReturn"`
	Profit           float64 `json:"profit"`
	ProfitChange     float64 `json:"profitChange"`
	ProfitChangeType string  `json:"profitChangeType"`
}

// YearlyComparisonPoint compares one period across two years.
type YearlyComparisonPoint struct {
	Name     string  `json:"name"`
	LastYear float64 `json:"lastYear"`
	ThisYear float64 `json:"thisYear"`
}

// Restaurant is the state aggregate for one location. A snapshot of it is
// the unit of consistency: every mutation produces a whole new snapshot, so
// readers never see a half-applied edit.
type Restaurant struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Inventory inventory.Catalog `json:"inventory"`
	Dishes    dish.Menu         `json:"dishes"`
	Tasks     []Task            `json:"tasks"`

	Sales            Sales                   `json:"salesData"`
	Financials       Financials              `json:"financials"`
	YearlyComparison []YearlyComparisonPoint `json:"yearlyComparison"`

	// CatalogVersion increments on every inventory write. Consumers caching
	// cost derivations can use it to detect staleness.
	CatalogVersion int64 `json:"catalogVersion"`

	// NextTaskID is the monotonic counter behind task ids.
	NextTaskID int64 `json:"nextTaskId"`
}

// Clone returns a deep copy. Mutations clone, edit the copy, then swap it
// in; the previous snapshot stays untouched for in-flight readers.
func (r *Restaurant) Clone() *Restaurant {
	out := *r

	out.Inventory = make(inventory.Catalog, len(r.Inventory))
	copy(out.Inventory, r.Inventory)

	out.Dishes = make(dish.Menu, len(r.Dishes))
	for i, d := range r.Dishes {
		out.Dishes[i] = d.Clone()
	}

	out.Tasks = make([]Task, len(r.Tasks))
	copy(out.Tasks, r.Tasks)

	out.Sales.Daily = append([]ForecastPoint(nil), r.Sales.Daily...)
	out.Sales.Weekly = append([]ForecastPoint(nil), r.Sales.Weekly...)
	out.Sales.Monthly = append([]ForecastPoint(nil), r.Sales.Monthly...)

	out.YearlyComparison = append([]YearlyComparisonPoint(nil), r.YearlyComparison...)

	return &out
}
