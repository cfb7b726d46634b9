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

// sponsorshipService implements the SponsorshipSvcFacade interface
type sponsorshipService struct {
	BaseService
	packageRepo portsrepo.PackageRepositoryFacade
	sponsorRepo portsrepo.SponsorRepositoryFacade
}

// NewSponsorshipService creates a new sponsorship service
func NewSponsorshipService(packageRepo portsrepo.PackageRepositoryFacade, sponsorRepo portsrepo.SponsorRepositoryFacade) portssvc.SponsorshipSvcFacade {
	return &sponsorshipService{
		packageRepo: packageRepo,
		sponsorRepo: sponsorRepo,
	}
}

// Ensure sponsorshipService implements the SponsorshipSvcFacade interface
var _ portssvc.SponsorshipSvcFacade = (*sponsorshipService)(nil)

// CreatePackage creates a sponsorship package, optionally with its benefit
// bundle. Benefit quantity defaults to 1.
func (s *sponsorshipService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*domain.SponsorshipPackage, error) {
	currency := req.Currency
	if currency == "" {
		currency = domain.USD
	}
	maxSponsors := req.MaxSponsors
	if maxSponsors == 0 {
		maxSponsors = 1
	}

	benefits := make([]domain.SponsorBenefit, len(req.Benefits))
	for i, b := range req.Benefits {
		quantity := b.Quantity
		if quantity == 0 {
			quantity = 1
		}
		benefits[i] = domain.SponsorBenefit{
			Name:          b.Name,
			Description:   b.Description,
			Value:         b.Value,
			CostToProvide: b.CostToProvide,
			Quantity:      quantity,
			IsExclusive:   b.IsExclusive,
		}
	}

	pkg := domain.SponsorshipPackage{
		PackageID:   uuid.NewString(),
		EventID:     req.EventID,
		Tier:        req.Tier,
		TierName:    req.TierName,
		Amount:      req.Amount,
		Currency:    currency,
		Benefits:    benefits,
		MaxSponsors: maxSponsors,
		SoldCount:   0,
		IsActive:    true,
	}

	if err := s.packageRepo.SavePackage(ctx, pkg); err != nil {
		s.LogError(ctx, err, "Failed to save sponsorship package", slog.String("event_id", req.EventID))
		return nil, fmt.Errorf("failed to create sponsorship package: %w", err)
	}

	s.LogInfo(ctx, "Sponsorship package created",
		slog.String("package_id", pkg.PackageID),
		slog.String("tier", string(pkg.Tier)))
	return &pkg, nil
}

// ListPackages retrieves packages, optionally filtered by event ID.
func (s *sponsorshipService) ListPackages(ctx context.Context, eventID string) ([]domain.SponsorshipPackage, error) {
	pkgs, err := s.packageRepo.ListPackages(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsorship packages: %w", err)
	}
	if pkgs == nil {
		return []domain.SponsorshipPackage{}, nil
	}
	return pkgs, nil
}

// CreateSponsor registers a new sponsor prospect.
func (s *sponsorshipService) CreateSponsor(ctx context.Context, req dto.CreateSponsorRequest) (*domain.Sponsor, error) {
	sponsor := domain.Sponsor{
		SponsorID:       uuid.NewString(),
		CompanyName:     req.CompanyName,
		Industry:        req.Industry,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Status:          domain.SponsorProspect,
		CommittedAmount: decimal.Zero,
		FulfillmentRate: decimal.Zero,
		Notes:           req.Notes,
	}

	if err := s.sponsorRepo.SaveSponsor(ctx, sponsor); err != nil {
		s.LogError(ctx, err, "Failed to save sponsor", slog.String("company", req.CompanyName))
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}

	s.LogInfo(ctx, "Sponsor registered",
		slog.String("sponsor_id", sponsor.SponsorID),
		slog.String("company", sponsor.CompanyName))
	return &sponsor, nil
}

// ListSponsors retrieves sponsors, optionally filtered by status.
func (s *sponsorshipService) ListSponsors(ctx context.Context, status domain.SponsorshipStatus) ([]domain.Sponsor, error) {
	sponsors, err := s.sponsorRepo.ListSponsors(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	if sponsors == nil {
		return []domain.Sponsor{}, nil
	}
	return sponsors, nil
}

// UpdateSponsorStatus overwrites the sponsor's status unconditionally; no
// transition graph is enforced, any status is reachable from any other.
// Setting status to contracted stamps the contract date with the current
// time, even when the sponsor was already contracted.
func (s *sponsorshipService) UpdateSponsorStatus(ctx context.Context, sponsorID string, req dto.UpdateSponsorStatusRequest) (*domain.Sponsor, error) {
	sponsor, err := s.sponsorRepo.FindSponsorByID(ctx, sponsorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sponsor %s for status update: %w", sponsorID, err)
	}

	sponsor.Status = req.Status
	if req.CommittedAmount != nil {
		sponsor.CommittedAmount = *req.CommittedAmount
	}
	if req.PackageID != nil {
		sponsor.PackageID = *req.PackageID
	}
	if req.Status == domain.SponsorContracted {
		signedAt := time.Now().UTC()
		sponsor.ContractSignedAt = &signedAt
	}

	if err := s.sponsorRepo.UpdateSponsor(ctx, *sponsor); err != nil {
		s.LogError(ctx, err, "Failed to update sponsor status", slog.String("sponsor_id", sponsorID))
		return nil, fmt.Errorf("failed to update sponsor %s: %w", sponsorID, err)
	}

	s.LogInfo(ctx, "Sponsor status updated",
		slog.String("sponsor_id", sponsorID),
		slog.String("status", string(req.Status)))
	return sponsor, nil
}
