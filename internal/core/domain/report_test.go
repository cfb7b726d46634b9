package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReportDerivedMetrics(t *testing.T) {
	report := FinancialReport{
		TotalRegistrationRevenue: decimal.Zero,
		TotalSponsorshipRevenue:  decimal.NewFromInt(50000),
		TotalExhibitRevenue:      decimal.Zero,
		TotalOtherRevenue:        decimal.Zero,
		TotalBudget:              decimal.NewFromInt(40000),
		TotalActual:              decimal.NewFromInt(25000),
		TotalAttendees:           500,
		PaidAttendees:            400,
	}

	assert.True(t, report.TotalRevenue().Equal(decimal.NewFromInt(50000)))
	assert.True(t, report.NetProfit().Equal(decimal.NewFromInt(25000)))
	assert.True(t, report.ROIPercentage().Equal(decimal.NewFromInt(100)), "25000 profit over 25000 spend is 100%")
	assert.True(t, report.BudgetVariance().Equal(decimal.NewFromInt(15000)))
	assert.True(t, report.BudgetUtilizationRate().Equal(decimal.RequireFromString("62.5")))
	assert.True(t, report.CostPerAttendee().Equal(decimal.NewFromInt(50)))
	assert.True(t, report.RevenuePerAttendee().Equal(decimal.NewFromInt(100)))
}

func TestReportZeroGuards(t *testing.T) {
	report := FinancialReport{
		TotalRegistrationRevenue: decimal.Zero,
		TotalSponsorshipRevenue:  decimal.NewFromInt(1000),
		TotalExhibitRevenue:      decimal.Zero,
		TotalOtherRevenue:        decimal.Zero,
		TotalBudget:              decimal.Zero,
		TotalActual:              decimal.Zero,
		TotalAttendees:           0,
	}

	assert.True(t, report.ROIPercentage().IsZero(), "No spend means no ROI, not a division error")
	assert.True(t, report.BudgetUtilizationRate().IsZero())
	assert.True(t, report.CostPerAttendee().IsZero())
	assert.True(t, report.RevenuePerAttendee().IsZero())

	// Net profit still reflects the revenue
	assert.True(t, report.NetProfit().Equal(decimal.NewFromInt(1000)))
}

func TestReportNegativeProfit(t *testing.T) {
	report := FinancialReport{
		TotalRegistrationRevenue: decimal.Zero,
		TotalSponsorshipRevenue:  decimal.NewFromInt(10000),
		TotalExhibitRevenue:      decimal.Zero,
		TotalOtherRevenue:        decimal.Zero,
		TotalBudget:              decimal.NewFromInt(15000),
		TotalActual:              decimal.NewFromInt(20000),
	}

	assert.True(t, report.NetProfit().Equal(decimal.NewFromInt(-10000)))
	assert.True(t, report.ROIPercentage().Equal(decimal.NewFromInt(-50)))
	assert.True(t, report.BudgetVariance().Equal(decimal.NewFromInt(-5000)), "Overspend is a negative variance")
}
