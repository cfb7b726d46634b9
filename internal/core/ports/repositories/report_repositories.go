package repositories

import (
	"context"

	"github.com/eventops/event_finance_app/internal/core/domain"
)

// ReportReader defines read operations for financial reports.
type ReportReader interface {
	// FindReportByID retrieves a single report.
	// Returns apperrors.ErrNotFound when no report has the given ID.
	FindReportByID(ctx context.Context, reportID string) (*domain.FinancialReport, error)

	// ListReports retrieves all reports, optionally filtered by event ID.
	ListReports(ctx context.Context, eventID string) ([]domain.FinancialReport, error)
}

// ReportWriter defines write operations for financial reports. Reports are
// immutable once generated, so there is no update.
type ReportWriter interface {
	// SaveReport appends a generated report snapshot.
	SaveReport(ctx context.Context, report domain.FinancialReport) error

	// Clear removes every stored report.
	Clear(ctx context.Context) error
}

// ReportRepositoryFacade combines all report repository interfaces.
type ReportRepositoryFacade interface {
	ReportReader
	ReportWriter
}
