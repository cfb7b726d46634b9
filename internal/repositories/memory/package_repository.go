package memory

import (
	"context"
	"sync"

	"github.com/eventops/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
)

// PackageRepository is the in-memory store for sponsorship packages.
// Packages are only ever appended and listed, so a slice is enough.
type PackageRepository struct {
	mu       sync.RWMutex
	packages []domain.SponsorshipPackage
}

// NewPackageRepository creates an empty package repository.
func NewPackageRepository() *PackageRepository {
	return &PackageRepository{}
}

// Ensure PackageRepository implements the facade
var _ portsrepo.PackageRepositoryFacade = (*PackageRepository)(nil)

// SavePackage appends a new package.
func (r *PackageRepository) SavePackage(_ context.Context, pkg domain.SponsorshipPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.packages = append(r.packages, pkg)
	return nil
}

// ListPackages returns all packages, or only those for the given event when
// eventID is non-empty, in insertion order.
func (r *PackageRepository) ListPackages(_ context.Context, eventID string) ([]domain.SponsorshipPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.SponsorshipPackage, 0, len(r.packages))
	for _, pkg := range r.packages {
		if eventID == "" || pkg.EventID == eventID {
			result = append(result, pkg)
		}
	}
	return result, nil
}

// Clear removes every stored package.
func (r *PackageRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.packages = nil
	return nil
}
