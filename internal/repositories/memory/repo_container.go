package memory

import (
	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all in-memory repositories, empty, scoped to
// the process lifetime. Construct once at startup and inject; the stores
// carry their own locking.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BudgetItemRepo:  NewBudgetItemRepository(),
		PackageRepo:     NewPackageRepository(),
		SponsorRepo:     NewSponsorRepository(),
		ReportRepo:      NewReportRepository(),
		TransactionRepo: NewTransactionRepository(),
	}
}
