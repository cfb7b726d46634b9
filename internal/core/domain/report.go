package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialReport is an immutable snapshot of an event's aggregated
// revenue, expense and attendee figures, computed once at generation time.
// Registration, exhibit and other revenue stay zero until the corresponding
// external systems are integrated.
type FinancialReport struct {
	ReportID    string       `json:"reportID"`
	EventID     string       `json:"eventID"`
	ReportName  string       `json:"reportName"`
	ReportDate  time.Time    `json:"reportDate"`
	PeriodStart time.Time    `json:"periodStart"`
	PeriodEnd   time.Time    `json:"periodEnd"`
	Currency    CurrencyCode `json:"currency"`

	TotalRegistrationRevenue decimal.Decimal `json:"totalRegistrationRevenue"`
	TotalSponsorshipRevenue  decimal.Decimal `json:"totalSponsorshipRevenue"`
	TotalExhibitRevenue      decimal.Decimal `json:"totalExhibitRevenue"`
	TotalOtherRevenue        decimal.Decimal `json:"totalOtherRevenue"`

	TotalBudget decimal.Decimal `json:"totalBudget"`
	TotalActual decimal.Decimal `json:"totalActual"`

	TotalAttendees int `json:"totalAttendees"`
	PaidAttendees  int `json:"paidAttendees"`
}

// TotalRevenue sums the four revenue components.
func (r FinancialReport) TotalRevenue() decimal.Decimal {
	return r.TotalRegistrationRevenue.
		Add(r.TotalSponsorshipRevenue).
		Add(r.TotalExhibitRevenue).
		Add(r.TotalOtherRevenue)
}

// NetProfit returns total revenue minus total actual spend.
func (r FinancialReport) NetProfit() decimal.Decimal {
	return r.TotalRevenue().Sub(r.TotalActual)
}

// ROIPercentage returns net profit over total actual spend as a percentage,
// zero when nothing was spent.
func (r FinancialReport) ROIPercentage() decimal.Decimal {
	if r.TotalActual.IsZero() {
		return decimal.Zero
	}
	return r.NetProfit().Div(r.TotalActual).Mul(decimal.NewFromInt(100))
}

// CostPerAttendee returns actual spend per attendee, zero-guarded.
func (r FinancialReport) CostPerAttendee() decimal.Decimal {
	if r.TotalAttendees == 0 {
		return decimal.Zero
	}
	return r.TotalActual.Div(decimal.NewFromInt(int64(r.TotalAttendees)))
}

// RevenuePerAttendee returns total revenue per attendee, zero-guarded.
func (r FinancialReport) RevenuePerAttendee() decimal.Decimal {
	if r.TotalAttendees == 0 {
		return decimal.Zero
	}
	return r.TotalRevenue().Div(decimal.NewFromInt(int64(r.TotalAttendees)))
}

// BudgetVariance returns projected budget minus actual spend.
func (r FinancialReport) BudgetVariance() decimal.Decimal {
	return r.TotalBudget.Sub(r.TotalActual)
}

// BudgetUtilizationRate returns actual spend as a percentage of projected
// budget, zero when no budget was projected.
func (r FinancialReport) BudgetUtilizationRate() decimal.Decimal {
	if r.TotalBudget.IsZero() {
		return decimal.Zero
	}
	return r.TotalActual.Div(r.TotalBudget).Mul(decimal.NewFromInt(100))
}
