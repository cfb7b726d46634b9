package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SponsorshipTier ranks sponsorship packages.
type SponsorshipTier string

const (
	TierTitle    SponsorshipTier = "title"
	TierPlatinum SponsorshipTier = "platinum"
	TierGold     SponsorshipTier = "gold"
	TierSilver   SponsorshipTier = "silver"
	TierBronze   SponsorshipTier = "bronze"
	TierMedia    SponsorshipTier = "media"
	TierInKind   SponsorshipTier = "in_kind"
)

// SponsorshipStatus is the sponsor contract lifecycle state. The suggested
// progression is prospect -> contacted -> negotiating -> committed ->
// contracted -> fulfilled, with cancelled reachable from anywhere, but the
// system deliberately does not enforce any transition graph.
type SponsorshipStatus string

const (
	SponsorProspect    SponsorshipStatus = "prospect"
	SponsorContacted   SponsorshipStatus = "contacted"
	SponsorNegotiating SponsorshipStatus = "negotiating"
	SponsorCommitted   SponsorshipStatus = "committed"
	SponsorContracted  SponsorshipStatus = "contracted"
	SponsorFulfilled   SponsorshipStatus = "fulfilled"
	SponsorCancelled   SponsorshipStatus = "cancelled"
)

// SponsorBenefit is a single deliverable bundled into a package.
type SponsorBenefit struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Value         decimal.Decimal `json:"value"`
	CostToProvide decimal.Decimal `json:"costToProvide"`
	Quantity      int             `json:"quantity"`
	IsExclusive   bool            `json:"isExclusive"`
}

// SponsorshipPackage is a priced sponsorship tier offered for an event.
// SoldCount is carried for future sales integration; no exposed operation
// mutates it.
type SponsorshipPackage struct {
	PackageID   string           `json:"packageID"`
	EventID     string           `json:"eventID"`
	Tier        SponsorshipTier  `json:"tier"`
	TierName    string           `json:"tierName"`
	Amount      decimal.Decimal  `json:"amount"`
	Currency    CurrencyCode     `json:"currency"`
	Benefits    []SponsorBenefit `json:"benefits"`
	MaxSponsors int              `json:"maxSponsors"`
	SoldCount   int              `json:"soldCount"`
	IsActive    bool             `json:"isActive"`
}

// AvailableCount returns the remaining sponsor slots, never negative.
func (p SponsorshipPackage) AvailableCount() int {
	if available := p.MaxSponsors - p.SoldCount; available > 0 {
		return available
	}
	return 0
}

// TotalBenefitValue sums benefit value weighted by quantity.
func (p SponsorshipPackage) TotalBenefitValue() decimal.Decimal {
	total := decimal.Zero
	for _, b := range p.Benefits {
		total = total.Add(b.Value.Mul(decimal.NewFromInt(int64(b.Quantity))))
	}
	return total
}

// TotalCostToProvide sums benefit delivery cost weighted by quantity.
func (p SponsorshipPackage) TotalCostToProvide() decimal.Decimal {
	total := decimal.Zero
	for _, b := range p.Benefits {
		total = total.Add(b.CostToProvide.Mul(decimal.NewFromInt(int64(b.Quantity))))
	}
	return total
}

// NetRevenue returns the package price minus the cost of providing its benefits.
func (p SponsorshipPackage) NetRevenue() decimal.Decimal {
	return p.Amount.Sub(p.TotalCostToProvide())
}

// Sponsor is a prospective or contracted funding organization.
type Sponsor struct {
	SponsorID       string            `json:"sponsorID"`
	CompanyName     string            `json:"companyName"`
	Industry        string            `json:"industry"`
	ContactName     string            `json:"contactName"`
	ContactEmail    string            `json:"contactEmail"`
	ContactPhone    string            `json:"contactPhone"`
	PackageID       string            `json:"packageID"` // empty until a package is chosen
	Status          SponsorshipStatus `json:"status"`
	CommittedAmount decimal.Decimal   `json:"committedAmount"`
	SupportType     string            `json:"supportType"` // cash, discount, product
	ContractSignedAt *time.Time       `json:"contractSignedAt,omitempty"`
	FulfillmentRate decimal.Decimal   `json:"fulfillmentRate"`
	Notes           string            `json:"notes"`
}
