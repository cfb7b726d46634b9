package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventops/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
	"github.com/eventops/event_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultReportName is used when the request does not name the report.
const defaultReportName = "Financial Summary Report"

// reportService implements the ReportSvcFacade interface
type reportService struct {
	BaseService
	reportRepo portsrepo.ReportRepositoryFacade
	budgetRepo portsrepo.BudgetItemReader
	sponsorRepo portsrepo.SponsorReader
}

// NewReportService creates a new report service. It reads budget items and
// sponsors to assemble report snapshots but never mutates them.
func NewReportService(reportRepo portsrepo.ReportRepositoryFacade, budgetRepo portsrepo.BudgetItemReader, sponsorRepo portsrepo.SponsorReader) portssvc.ReportSvcFacade {
	return &reportService{
		reportRepo:  reportRepo,
		budgetRepo:  budgetRepo,
		sponsorRepo: sponsorRepo,
	}
}

// Ensure reportService implements the ReportSvcFacade interface
var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// GenerateReport computes and stores an immutable snapshot. Budget totals
// cover ALL of the event's line items regardless of the requested period
// bounds, and sponsorship revenue covers ALL contracted sponsors regardless
// of event. Both are long-standing behavior that downstream consumers rely
// on; do not narrow the scoping here without a coordinated change.
func (s *reportService) GenerateReport(ctx context.Context, req dto.GenerateReportRequest) (*domain.FinancialReport, error) {
	items, err := s.budgetRepo.ListBudgetItems(ctx, domain.BudgetItemFilter{EventID: req.EventID})
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items for report: %w", err)
	}

	totalBudget := decimal.Zero
	totalActual := decimal.Zero
	for _, item := range items {
		totalBudget = totalBudget.Add(item.ProjectedAmount)
		totalActual = totalActual.Add(item.ActualAmount)
	}

	contracted, err := s.sponsorRepo.ListSponsors(ctx, domain.SponsorContracted)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracted sponsors for report: %w", err)
	}

	totalSponsorship := decimal.Zero
	for _, sponsor := range contracted {
		totalSponsorship = totalSponsorship.Add(sponsor.CommittedAmount)
	}

	reportName := req.ReportName
	if reportName == "" {
		reportName = defaultReportName
	}

	report := domain.FinancialReport{
		ReportID:    uuid.NewString(),
		EventID:     req.EventID,
		ReportName:  reportName,
		ReportDate:  time.Now().UTC(),
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Currency:    domain.USD,

		// Registration, exhibit and other revenue stay zero until the
		// corresponding external systems are integrated.
		TotalRegistrationRevenue: decimal.Zero,
		TotalSponsorshipRevenue:  totalSponsorship,
		TotalExhibitRevenue:      decimal.Zero,
		TotalOtherRevenue:        decimal.Zero,

		TotalBudget: totalBudget,
		TotalActual: totalActual,

		TotalAttendees: req.TotalAttendees,
		PaidAttendees:  req.PaidAttendees,
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save financial report", slog.String("event_id", req.EventID))
		return nil, fmt.Errorf("failed to save financial report: %w", err)
	}

	s.LogInfo(ctx, "Financial report generated",
		slog.String("report_id", report.ReportID),
		slog.String("event_id", report.EventID),
		slog.Int("budget_items", len(items)),
		slog.Int("contracted_sponsors", len(contracted)))
	return &report, nil
}

// GetReportByID retrieves a single report.
func (s *reportService) GetReportByID(ctx context.Context, reportID string) (*domain.FinancialReport, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", reportID, err)
	}
	return report, nil
}

// ListReports retrieves reports, optionally filtered by event ID.
func (s *reportService) ListReports(ctx context.Context, eventID string) ([]domain.FinancialReport, error) {
	reports, err := s.reportRepo.ListReports(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		return []domain.FinancialReport{}, nil
	}
	return reports, nil
}
