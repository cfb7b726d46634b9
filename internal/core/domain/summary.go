package domain

import "github.com/shopspring/decimal"

// CategoryBreakdown is the per-category slice of a budget summary. The
// projected/actual figures are emitted as float64 for report friendliness;
// decimal accuracy is preserved everywhere else.
type CategoryBreakdown struct {
	Projected float64 `json:"projected"`
	Actual    float64 `json:"actual"`
	Count     int     `json:"count"`
}

// BudgetSummary aggregates an event's budget line items.
type BudgetSummary struct {
	TotalItems     int                                  `json:"totalItems"`
	TotalProjected decimal.Decimal                      `json:"totalProjected"`
	TotalActual    decimal.Decimal                      `json:"totalActual"`
	TotalVariance  decimal.Decimal                      `json:"totalVariance"`
	ByCategory     map[BudgetCategory]CategoryBreakdown `json:"byCategory"`
	ByStatus       map[BudgetStatus]int                 `json:"byStatus"`
}

// SummarizeBudget derives a summary from a snapshot of budget line items,
// all of which are assumed to belong to the same event. Zero items yields a
// zero-valued summary with empty maps, never an error.
func SummarizeBudget(items []BudgetLineItem) BudgetSummary {
	summary := BudgetSummary{
		TotalItems:     len(items),
		TotalProjected: decimal.Zero,
		TotalActual:    decimal.Zero,
		TotalVariance:  decimal.Zero,
		ByCategory:     make(map[BudgetCategory]CategoryBreakdown),
		ByStatus:       make(map[BudgetStatus]int),
	}

	for _, item := range items {
		summary.TotalProjected = summary.TotalProjected.Add(item.ProjectedAmount)
		summary.TotalActual = summary.TotalActual.Add(item.ActualAmount)

		breakdown := summary.ByCategory[item.Category]
		projected, _ := item.ProjectedAmount.Float64()
		actual, _ := item.ActualAmount.Float64()
		breakdown.Projected += projected
		breakdown.Actual += actual
		breakdown.Count++
		summary.ByCategory[item.Category] = breakdown

		summary.ByStatus[item.Status]++
	}

	summary.TotalVariance = summary.TotalProjected.Sub(summary.TotalActual)
	return summary
}
