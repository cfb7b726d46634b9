package services

import (
	"context"
	"fmt"

	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
)

// adminService implements the AdminSvc interface
type adminService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewAdminService creates a new admin service over all repositories
func NewAdminService(repos portsrepo.RepositoryProvider) portssvc.AdminSvc {
	return &adminService{repos: repos}
}

// Ensure adminService implements the AdminSvc interface
var _ portssvc.AdminSvc = (*adminService)(nil)

// ResetAll clears every repository unconditionally. There is no soft delete
// and no confirmation; the data is gone for the remainder of the process.
func (s *adminService) ResetAll(ctx context.Context) error {
	if err := s.repos.BudgetItemRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear budget items: %w", err)
	}
	if err := s.repos.PackageRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear sponsorship packages: %w", err)
	}
	if err := s.repos.SponsorRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear sponsors: %w", err)
	}
	if err := s.repos.ReportRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear reports: %w", err)
	}
	if err := s.repos.TransactionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	s.LogInfo(ctx, "All in-memory stores cleared")
	return nil
}
