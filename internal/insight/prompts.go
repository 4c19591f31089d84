package insight

import (
	"encoding/json"
	"fmt"

	"github.com/techbytecraft/QSR/internal/core/types"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/domain/reports"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
)

// Snapshot slices fed into prompts are capped so one oversized catalog
// cannot blow the context window.
const (
	costPromptItems   = 10
	reportPromptItems = 15
)

func jsonBlock(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

func capCatalog(c inventory.Catalog, n int) inventory.Catalog {
	if len(c) > n {
		return c[:n]
	}
	return c
}

func costOptimizationPrompt(c inventory.Catalog) string {
	return fmt.Sprintf(`You are an expert supply chain analyst for a Quick Service Restaurant (QSR).
Based on the following inventory data, provide actionable insights to optimize costs for food production.
Focus on high-cost items, items with low stock which might indicate supply chain issues, and suggest potential areas for waste reduction or supplier renegotiation.
Format the response as a professional analysis with a title and bullet points.

Inventory Data:
%s`, jsonBlock(capCatalog(c, costPromptItems)))
}

func forecastAnalysisPrompt(points []restaurant.ForecastPoint, tf inventory.Timeframe) string {
	return fmt.Sprintf(`As a QSR business analyst, analyze the following %[1]s sales data.
'forecast' is the expected sales revenue, and 'actual' is the revenue that occurred.
Identify key trends, highlight periods with significant deviation (positive or negative), and suggest potential reasons for these variances.
Provide a concise summary of your findings.

Sales Data (%[1]s):
%[2]s`, tf, jsonBlock(points))
}

// dishCostReport is the pre-processed costing block for the business report:
// names and costs only, rounded for readability.
type dishCostReport struct {
	DishName  string  `json:"dishName"`
	TotalCost float64 `json:"totalCost"`
}

func businessReportPrompt(r *restaurant.Restaurant) string {
	lines := reports.DishCosts(r)
	costSummary := make([]dishCostReport, 0, len(lines))
	for _, l := range lines {
		costSummary = append(costSummary, dishCostReport{
			DishName:  l.Name,
			TotalCost: types.MoneyFloat(l.Cost),
		})
	}

	return fmt.Sprintf(`You are a senior business consultant for a Quick Service Restaurant (QSR).
Analyze the following comprehensive business data snapshot and generate a professional summary report.

The report should include:
1. Executive Summary: a brief overview of the business's current state.
2. Sales Performance Analysis: compare actual sales to forecast per period, calculate variance, and highlight deviations above 15%%.
3. Inventory Management Review: stock levels, out-of-stock risks, and high-value inventory.
4. Operational Task Status: totals of completed and pending tasks and the impact of the backlog.
5. Dish Costing Summary: identify high-cost dishes and suggest cost-saving measures.
6. Year-over-Year Performance: compare this year's revenue against last year's.
7. Strategic Recommendations: actionable advice to improve profitability and efficiency.

Here is the data:

1. Sales Data (Monthly Actuals vs. Forecast):
%s

2. Current Inventory Status (Top %d items):
%s

3. Current Task List:
%s

4. Dish Production Costs:
%s

5. Year-over-Year Revenue Comparison:
%s

Please provide a well-structured and insightful report.`,
		jsonBlock(r.Sales.Monthly),
		reportPromptItems,
		jsonBlock(capCatalog(r.Inventory, reportPromptItems)),
		jsonBlock(r.Tasks),
		jsonBlock(costSummary),
		jsonBlock(r.YearlyComparison),
	)
}

const invoiceExtractionPrompt = `You are an intelligent inventory management assistant for a restaurant.
Your task is to analyze the provided invoice image and extract all food items or ingredients listed.
For each item, you must identify its name, the quantity purchased, and the cost per unit.

- 'name': the clear, concise name of the item.
- 'stock': the numerical quantity of the item purchased.
- 'unitCost': the price for a single unit of the item.

Strictly return the data ONLY as a JSON array of objects with the keys "name", "stock" and "unitCost". Do not include any explanatory text, greetings, or markdown formatting.
If the image is not an invoice, is unreadable, or contains no valid food items, return an empty JSON array: [].`
