package repositories

import (
	"context"

	"github.com/eventops/event_finance_app/internal/core/domain"
)

// PackageReader defines read operations for sponsorship packages.
type PackageReader interface {
	// ListPackages retrieves all packages, optionally filtered by event ID.
	ListPackages(ctx context.Context, eventID string) ([]domain.SponsorshipPackage, error)
}

// PackageWriter defines write operations for sponsorship packages.
type PackageWriter interface {
	// SavePackage appends a new package.
	SavePackage(ctx context.Context, pkg domain.SponsorshipPackage) error

	// Clear removes every stored package.
	Clear(ctx context.Context) error
}

// PackageRepositoryFacade combines all package repository interfaces.
type PackageRepositoryFacade interface {
	PackageReader
	PackageWriter
}

// SponsorReader defines read operations for sponsors.
type SponsorReader interface {
	// FindSponsorByID retrieves a single sponsor.
	// Returns apperrors.ErrNotFound when no sponsor has the given ID.
	FindSponsorByID(ctx context.Context, sponsorID string) (*domain.Sponsor, error)

	// ListSponsors retrieves all sponsors, optionally filtered by status.
	ListSponsors(ctx context.Context, status domain.SponsorshipStatus) ([]domain.Sponsor, error)
}

// SponsorWriter defines write operations for sponsors.
type SponsorWriter interface {
	// SaveSponsor appends a new sponsor.
	SaveSponsor(ctx context.Context, sponsor domain.Sponsor) error

	// UpdateSponsor replaces the stored sponsor with the same ID.
	// Returns apperrors.ErrNotFound when no sponsor has the given ID.
	UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) error

	// Clear removes every stored sponsor.
	Clear(ctx context.Context) error
}

// SponsorRepositoryFacade combines all sponsor repository interfaces.
type SponsorRepositoryFacade interface {
	SponsorReader
	SponsorWriter
}
