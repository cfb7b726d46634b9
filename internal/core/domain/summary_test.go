package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeItem(category BudgetCategory, status BudgetStatus, unitCost, quantity, actual int64) BudgetLineItem {
	item := BudgetLineItem{
		Category:     category,
		Status:       status,
		UnitCost:     decimal.NewFromInt(unitCost),
		Quantity:     decimal.NewFromInt(quantity),
		ActualAmount: decimal.NewFromInt(actual),
	}
	item.RecomputeProjected()
	return item
}

func TestSummarizeBudget_Empty(t *testing.T) {
	summary := SummarizeBudget(nil)

	assert.Equal(t, 0, summary.TotalItems)
	assert.True(t, summary.TotalProjected.IsZero())
	assert.True(t, summary.TotalActual.IsZero())
	assert.True(t, summary.TotalVariance.IsZero())
	assert.NotNil(t, summary.ByCategory, "Empty maps, not nil")
	assert.NotNil(t, summary.ByStatus)
	assert.Empty(t, summary.ByCategory)
	assert.Empty(t, summary.ByStatus)
}

func TestSummarizeBudget_Accumulation(t *testing.T) {
	items := []BudgetLineItem{
		makeItem(CategoryVenue, BudgetApproved, 1000, 1, 900),
		makeItem(CategoryVenue, BudgetPaid, 200, 2, 450),
		makeItem(CategoryFoodBeverage, BudgetApproved, 50, 10, 0),
	}

	summary := SummarizeBudget(items)

	assert.Equal(t, 3, summary.TotalItems)
	assert.True(t, summary.TotalProjected.Equal(decimal.NewFromInt(1900))) // 1000 + 400 + 500
	assert.True(t, summary.TotalActual.Equal(decimal.NewFromInt(1350)))
	assert.True(t, summary.TotalVariance.Equal(decimal.NewFromInt(550)), "Variance is projected minus actual")

	venue := summary.ByCategory[CategoryVenue]
	assert.Equal(t, 2, venue.Count)
	assert.InDelta(t, 1400, venue.Projected, 0.001)
	assert.InDelta(t, 1350, venue.Actual, 0.001)

	food := summary.ByCategory[CategoryFoodBeverage]
	assert.Equal(t, 1, food.Count)
	assert.InDelta(t, 500, food.Projected, 0.001)
	assert.InDelta(t, 0, food.Actual, 0.001)

	assert.Equal(t, 2, summary.ByStatus[BudgetApproved])
	assert.Equal(t, 1, summary.ByStatus[BudgetPaid])
	assert.Len(t, summary.ByCategory, 2)
	assert.Len(t, summary.ByStatus, 2)
}

func TestSummarizeBudget_OverBudgetVariance(t *testing.T) {
	items := []BudgetLineItem{
		makeItem(CategoryProduction, BudgetPaid, 100, 1, 180),
	}

	summary := SummarizeBudget(items)
	assert.True(t, summary.TotalVariance.Equal(decimal.NewFromInt(-80)))
}
