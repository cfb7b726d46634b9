package dto

import (
	"time"

	"github.com/eventops/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateReportRequest defines the inputs for report generation.
type GenerateReportRequest struct {
	EventID        string    `json:"eventID" binding:"required,uuid"`
	ReportName     string    `json:"reportName" binding:"omitempty,max=200"`
	PeriodStart    time.Time `json:"periodStart" binding:"required"`
	PeriodEnd      time.Time `json:"periodEnd" binding:"required"`
	TotalAttendees int       `json:"totalAttendees" binding:"omitempty,min=0"`
	PaidAttendees  int       `json:"paidAttendees" binding:"omitempty,min=0"`
}

// ListReportsParams binds the optional report list filter.
type ListReportsParams struct {
	EventID string `form:"event_id" binding:"omitempty,uuid"`
}

// ReportResponse defines the data returned for a financial report, with
// every derived metric computed at read time from the stored snapshot.
type ReportResponse struct {
	ReportID    string              `json:"reportID"`
	EventID     string              `json:"eventID"`
	ReportName  string              `json:"reportName"`
	ReportDate  time.Time           `json:"reportDate"`
	PeriodStart time.Time           `json:"periodStart"`
	PeriodEnd   time.Time           `json:"periodEnd"`
	Currency    domain.CurrencyCode `json:"currency"`

	TotalRegistrationRevenue decimal.Decimal `json:"totalRegistrationRevenue"`
	TotalSponsorshipRevenue  decimal.Decimal `json:"totalSponsorshipRevenue"`
	TotalExhibitRevenue      decimal.Decimal `json:"totalExhibitRevenue"`
	TotalOtherRevenue        decimal.Decimal `json:"totalOtherRevenue"`
	TotalRevenue             decimal.Decimal `json:"totalRevenue"`

	TotalBudget decimal.Decimal `json:"totalBudget"`
	TotalActual decimal.Decimal `json:"totalActual"`

	NetProfit             decimal.Decimal `json:"netProfit"`
	ROIPercentage         decimal.Decimal `json:"roiPercentage"`
	BudgetVariance        decimal.Decimal `json:"budgetVariance"`
	BudgetUtilizationRate decimal.Decimal `json:"budgetUtilizationRate"`

	TotalAttendees     int             `json:"totalAttendees"`
	PaidAttendees      int             `json:"paidAttendees"`
	CostPerAttendee    decimal.Decimal `json:"costPerAttendee"`
	RevenuePerAttendee decimal.Decimal `json:"revenuePerAttendee"`
}

// ToReportResponse converts a domain.FinancialReport to its response DTO.
func ToReportResponse(report *domain.FinancialReport) ReportResponse {
	return ReportResponse{
		ReportID:    report.ReportID,
		EventID:     report.EventID,
		ReportName:  report.ReportName,
		ReportDate:  report.ReportDate,
		PeriodStart: report.PeriodStart,
		PeriodEnd:   report.PeriodEnd,
		Currency:    report.Currency,

		TotalRegistrationRevenue: report.TotalRegistrationRevenue,
		TotalSponsorshipRevenue:  report.TotalSponsorshipRevenue,
		TotalExhibitRevenue:      report.TotalExhibitRevenue,
		TotalOtherRevenue:        report.TotalOtherRevenue,
		TotalRevenue:             report.TotalRevenue(),

		TotalBudget: report.TotalBudget,
		TotalActual: report.TotalActual,

		NetProfit:             report.NetProfit(),
		ROIPercentage:         report.ROIPercentage(),
		BudgetVariance:        report.BudgetVariance(),
		BudgetUtilizationRate: report.BudgetUtilizationRate(),

		TotalAttendees:     report.TotalAttendees,
		PaidAttendees:      report.PaidAttendees,
		CostPerAttendee:    report.CostPerAttendee(),
		RevenuePerAttendee: report.RevenuePerAttendee(),
	}
}

// ListReportsResponse wraps a list of report DTOs.
type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ToListReportsResponse converts a slice of domain reports to the list DTO.
func ToListReportsResponse(reports []domain.FinancialReport) ListReportsResponse {
	res := make([]ReportResponse, len(reports))
	for i := range reports {
		res[i] = ToReportResponse(&reports[i])
	}
	return ListReportsResponse{Reports: res}
}
