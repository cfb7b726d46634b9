package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/eventops/event_finance_app/internal/apperrors"
	"github.com/eventops/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
)

// ReportRepository is the in-memory store for financial report snapshots.
// Reports are immutable once saved; there is no update path.
type ReportRepository struct {
	mu      sync.RWMutex
	reports map[string]domain.FinancialReport
	order   []string
}

// NewReportRepository creates an empty report repository.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		reports: make(map[string]domain.FinancialReport),
	}
}

// Ensure ReportRepository implements the facade
var _ portsrepo.ReportRepositoryFacade = (*ReportRepository)(nil)

// SaveReport appends a generated report snapshot.
func (r *ReportRepository) SaveReport(_ context.Context, report domain.FinancialReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[report.ReportID]; !exists {
		r.order = append(r.order, report.ReportID)
	}
	r.reports[report.ReportID] = report
	return nil
}

// FindReportByID retrieves a single report.
func (r *ReportRepository) FindReportByID(_ context.Context, reportID string) (*domain.FinancialReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[reportID]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)
	}
	return &report, nil
}

// ListReports returns all reports, or only those for the given event when
// eventID is non-empty, in insertion order.
func (r *ReportRepository) ListReports(_ context.Context, eventID string) ([]domain.FinancialReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.FinancialReport, 0, len(r.order))
	for _, id := range r.order {
		if report := r.reports[id]; eventID == "" || report.EventID == eventID {
			result = append(result, report)
		}
	}
	return result, nil
}

// Clear removes every stored report.
func (r *ReportRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = make(map[string]domain.FinancialReport)
	r.order = nil
	return nil
}
