package services

import (
	"context"

	"github.com/eventops/event_finance_app/internal/core/domain"
	"github.com/eventops/event_finance_app/internal/dto"
)

// SponsorshipReaderSvc defines read operations for packages and sponsors.
type SponsorshipReaderSvc interface {
	// ListPackages retrieves packages, optionally filtered by event ID.
	ListPackages(ctx context.Context, eventID string) ([]domain.SponsorshipPackage, error)

	// ListSponsors retrieves sponsors, optionally filtered by status.
	ListSponsors(ctx context.Context, status domain.SponsorshipStatus) ([]domain.Sponsor, error)
}

// SponsorshipWriterSvc defines write operations for packages and sponsors.
type SponsorshipWriterSvc interface {
	// CreatePackage creates a sponsorship package.
	CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*domain.SponsorshipPackage, error)

	// CreateSponsor registers a new sponsor prospect.
	CreateSponsor(ctx context.Context, req dto.CreateSponsorRequest) (*domain.Sponsor, error)

	// UpdateSponsorStatus overwrites a sponsor's status unconditionally,
	// optionally overwriting committed amount and package reference, and
	// stamps the contract date whenever the new status is contracted.
	UpdateSponsorStatus(ctx context.Context, sponsorID string, req dto.UpdateSponsorStatusRequest) (*domain.Sponsor, error)
}

// SponsorshipSvcFacade combines all sponsorship-related service interfaces.
type SponsorshipSvcFacade interface {
	SponsorshipReaderSvc
	SponsorshipWriterSvc
}
