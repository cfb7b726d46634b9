package services

import (
	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Budget = NewBudgetService(repos.BudgetItemRepo)
	container.Sponsorship = NewSponsorshipService(repos.PackageRepo, repos.SponsorRepo)

	// Report generation reads budget items and sponsors but owns neither.
	container.Report = NewReportService(repos.ReportRepo, repos.BudgetItemRepo, repos.SponsorRepo)

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Admin = NewAdminService(repos)

	return container
}
