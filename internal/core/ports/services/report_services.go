package services

import (
	"context"

	"github.com/eventops/event_finance_app/internal/core/domain"
	"github.com/eventops/event_finance_app/internal/dto"
)

// ReportReaderSvc defines read operations for financial reports.
type ReportReaderSvc interface {
	// GetReportByID retrieves a single report.
	GetReportByID(ctx context.Context, reportID string) (*domain.FinancialReport, error)

	// ListReports retrieves reports, optionally filtered by event ID.
	ListReports(ctx context.Context, eventID string) ([]domain.FinancialReport, error)
}

// ReportWriterSvc defines write operations for financial reports.
type ReportWriterSvc interface {
	// GenerateReport computes and stores an immutable report snapshot from
	// the current budget item and sponsor collections.
	GenerateReport(ctx context.Context, req dto.GenerateReportRequest) (*domain.FinancialReport, error)
}

// ReportSvcFacade combines all report-related service interfaces.
type ReportSvcFacade interface {
	ReportReaderSvc
	ReportWriterSvc
}
