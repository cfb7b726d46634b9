package dto

import (
	"time"

	"github.com/eventops/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SponsorBenefitRequest defines a benefit bundled into a package at creation.
type SponsorBenefitRequest struct {
	Name          string          `json:"name" binding:"required,max=200"`
	Description   string          `json:"description" binding:"omitempty,max=1000"`
	Value         decimal.Decimal `json:"value" binding:"gte=0"`
	CostToProvide decimal.Decimal `json:"costToProvide" binding:"gte=0"`
	Quantity      int             `json:"quantity" binding:"omitempty,min=1"`
	IsExclusive   bool            `json:"isExclusive"`
}

// CreatePackageRequest defines the data needed to create a sponsorship package.
type CreatePackageRequest struct {
	EventID     string                  `json:"eventID" binding:"required,uuid"`
	Tier        domain.SponsorshipTier  `json:"tier" binding:"required,oneof=title platinum gold silver bronze media in_kind"`
	TierName    string                  `json:"tierName" binding:"required,max=100"`
	Amount      decimal.Decimal         `json:"amount" binding:"gte=0"`
	Currency    domain.CurrencyCode     `json:"currency" binding:"omitempty,oneof=USD EUR GBP JPY KRW CNY SGD AUD"`
	MaxSponsors int                     `json:"maxSponsors" binding:"omitempty,min=1"`
	Benefits    []SponsorBenefitRequest `json:"benefits" binding:"omitempty,dive"`
}

// CreateSponsorRequest defines the data needed to register a sponsor prospect.
type CreateSponsorRequest struct {
	CompanyName  string `json:"companyName" binding:"required,max=200"`
	Industry     string `json:"industry" binding:"required,max=100"`
	ContactName  string `json:"contactName" binding:"required,max=200"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone" binding:"omitempty,max=50"`
	Notes        string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateSponsorStatusRequest defines a sponsor status transition. The status
// overwrite is unconditional; committed amount and package reference are
// overwritten only when supplied.
type UpdateSponsorStatusRequest struct {
	Status          domain.SponsorshipStatus `json:"status" binding:"required,oneof=prospect contacted negotiating committed contracted fulfilled cancelled"`
	CommittedAmount *decimal.Decimal         `json:"committedAmount" binding:"omitempty,gte=0"`
	PackageID       *string                  `json:"packageID" binding:"omitempty,uuid"`
}

// ListPackagesParams binds the optional package list filter.
type ListPackagesParams struct {
	EventID string `form:"event_id" binding:"omitempty,uuid"`
}

// ListSponsorsParams binds the optional sponsor list filter.
type ListSponsorsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=prospect contacted negotiating committed contracted fulfilled cancelled"`
}

// SponsorBenefitResponse defines the data returned for a package benefit.
type SponsorBenefitResponse struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Value         decimal.Decimal `json:"value"`
	CostToProvide decimal.Decimal `json:"costToProvide"`
	Quantity      int             `json:"quantity"`
	IsExclusive   bool            `json:"isExclusive"`
}

// PackageResponse defines the data returned for a sponsorship package,
// including the read-time derived totals.
type PackageResponse struct {
	PackageID          string                   `json:"packageID"`
	EventID            string                   `json:"eventID"`
	Tier               domain.SponsorshipTier   `json:"tier"`
	TierName           string                   `json:"tierName"`
	Amount             decimal.Decimal          `json:"amount"`
	Currency           domain.CurrencyCode      `json:"currency"`
	Benefits           []SponsorBenefitResponse `json:"benefits"`
	MaxSponsors        int                      `json:"maxSponsors"`
	SoldCount          int                      `json:"soldCount"`
	AvailableCount     int                      `json:"availableCount"`
	TotalBenefitValue  decimal.Decimal          `json:"totalBenefitValue"`
	TotalCostToProvide decimal.Decimal          `json:"totalCostToProvide"`
	NetRevenue         decimal.Decimal          `json:"netRevenue"`
	IsActive           bool                     `json:"isActive"`
}

// ToPackageResponse converts a domain.SponsorshipPackage to its response DTO.
func ToPackageResponse(pkg *domain.SponsorshipPackage) PackageResponse {
	benefits := make([]SponsorBenefitResponse, len(pkg.Benefits))
	for i, b := range pkg.Benefits {
		benefits[i] = SponsorBenefitResponse{
			Name:          b.Name,
			Description:   b.Description,
			Value:         b.Value,
			CostToProvide: b.CostToProvide,
			Quantity:      b.Quantity,
			IsExclusive:   b.IsExclusive,
		}
	}
	return PackageResponse{
		PackageID:          pkg.PackageID,
		EventID:            pkg.EventID,
		Tier:               pkg.Tier,
		TierName:           pkg.TierName,
		Amount:             pkg.Amount,
		Currency:           pkg.Currency,
		Benefits:           benefits,
		MaxSponsors:        pkg.MaxSponsors,
		SoldCount:          pkg.SoldCount,
		AvailableCount:     pkg.AvailableCount(),
		TotalBenefitValue:  pkg.TotalBenefitValue(),
		TotalCostToProvide: pkg.TotalCostToProvide(),
		NetRevenue:         pkg.NetRevenue(),
		IsActive:           pkg.IsActive,
	}
}

// ListPackagesResponse wraps a list of package DTOs.
type ListPackagesResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// ToListPackagesResponse converts a slice of domain packages to the list DTO.
func ToListPackagesResponse(pkgs []domain.SponsorshipPackage) ListPackagesResponse {
	res := make([]PackageResponse, len(pkgs))
	for i := range pkgs {
		res[i] = ToPackageResponse(&pkgs[i])
	}
	return ListPackagesResponse{Packages: res}
}

// SponsorResponse defines the data returned for a sponsor.
type SponsorResponse struct {
	SponsorID        string                   `json:"sponsorID"`
	CompanyName      string                   `json:"companyName"`
	Industry         string                   `json:"industry"`
	ContactName      string                   `json:"contactName"`
	ContactEmail     string                   `json:"contactEmail"`
	ContactPhone     string                   `json:"contactPhone,omitempty"`
	PackageID        string                   `json:"packageID,omitempty"`
	Status           domain.SponsorshipStatus `json:"status"`
	CommittedAmount  decimal.Decimal          `json:"committedAmount"`
	SupportType      string                   `json:"supportType,omitempty"`
	ContractSignedAt *time.Time               `json:"contractSignedAt,omitempty"`
	FulfillmentRate  decimal.Decimal          `json:"fulfillmentRate"`
	Notes            string                   `json:"notes,omitempty"`
}

// ToSponsorResponse converts a domain.Sponsor to its response DTO.
func ToSponsorResponse(sponsor *domain.Sponsor) SponsorResponse {
	return SponsorResponse{
		SponsorID:        sponsor.SponsorID,
		CompanyName:      sponsor.CompanyName,
		Industry:         sponsor.Industry,
		ContactName:      sponsor.ContactName,
		ContactEmail:     sponsor.ContactEmail,
		ContactPhone:     sponsor.ContactPhone,
		PackageID:        sponsor.PackageID,
		Status:           sponsor.Status,
		CommittedAmount:  sponsor.CommittedAmount,
		SupportType:      sponsor.SupportType,
		ContractSignedAt: sponsor.ContractSignedAt,
		FulfillmentRate:  sponsor.FulfillmentRate,
		Notes:            sponsor.Notes,
	}
}

// ListSponsorsResponse wraps a list of sponsor DTOs.
type ListSponsorsResponse struct {
	Sponsors []SponsorResponse `json:"sponsors"`
}

// ToListSponsorsResponse converts a slice of domain sponsors to the list DTO.
func ToListSponsorsResponse(sponsors []domain.Sponsor) ListSponsorsResponse {
	res := make([]SponsorResponse, len(sponsors))
	for i := range sponsors {
		res[i] = ToSponsorResponse(&sponsors[i])
	}
	return ListSponsorsResponse{Sponsors: res}
}
