package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetCategory is the standard top-level budget classification for event costs.
type BudgetCategory string

const (
	CategoryVenue          BudgetCategory = "venue"
	CategoryFoodBeverage   BudgetCategory = "food_beverage"
	CategoryAudioVisual    BudgetCategory = "audio_visual"
	CategoryProduction     BudgetCategory = "production"
	CategoryMarketing      BudgetCategory = "marketing"
	CategoryPrinting       BudgetCategory = "printing"
	CategoryTransportation BudgetCategory = "transportation"
	CategoryAccommodation  BudgetCategory = "accommodation"
	CategorySpeaker        BudgetCategory = "speaker"
	CategoryEntertainment  BudgetCategory = "entertainment"
	CategoryStaffing       BudgetCategory = "staffing"
	CategorySecurity       BudgetCategory = "security"
	CategoryInsurance      BudgetCategory = "insurance"
	CategoryTechnology     BudgetCategory = "technology"
	CategoryRegistration   BudgetCategory = "registration"
	CategorySignage        BudgetCategory = "signage"
	CategoryGiftsAwards    BudgetCategory = "gifts_awards"
	CategoryMiscellaneous  BudgetCategory = "miscellaneous"
	CategoryContingency    BudgetCategory = "contingency"
	CategoryTax            BudgetCategory = "tax"
	CategoryGratuity       BudgetCategory = "gratuity"
)

// BudgetStatus tracks a line item through approval and payment.
type BudgetStatus string

const (
	BudgetDraft           BudgetStatus = "draft"
	BudgetPendingApproval BudgetStatus = "pending_approval"
	BudgetApproved        BudgetStatus = "approved"
	BudgetCommitted       BudgetStatus = "committed"
	BudgetPaid            BudgetStatus = "paid"
	BudgetCancelled       BudgetStatus = "cancelled"
)

// CostType distinguishes fixed costs from per-unit variable costs.
type CostType string

const (
	CostFixed    CostType = "fixed"
	CostVariable CostType = "variable"
)

// BudgetLineItem is a single costed entry within an event's budget.
// ProjectedAmount is stored, not derived on read: it is computed as
// UnitCost*Quantity at creation and recomputed only when a patch touches
// UnitCost or Quantity. Variance fields ARE derived on read.
type BudgetLineItem struct {
	ItemID          string          `json:"itemID"`
	EventID         string          `json:"eventID"` // FK by convention only, no referential enforcement
	Category        BudgetCategory  `json:"category"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	VendorName      string          `json:"vendorName"`
	CostType        CostType        `json:"costType"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	Quantity        decimal.Decimal `json:"quantity"`
	ProjectedAmount decimal.Decimal `json:"projectedAmount"`
	ActualAmount    decimal.Decimal `json:"actualAmount"`
	Currency        CurrencyCode    `json:"currency"`
	Status          BudgetStatus    `json:"status"`
	PaymentDueDate  *time.Time      `json:"paymentDueDate,omitempty"`
	Notes           string          `json:"notes"`
	Timestamps
}

// Variance returns projected minus actual amount. Positive means under budget.
func (i BudgetLineItem) Variance() decimal.Decimal {
	return i.ProjectedAmount.Sub(i.ActualAmount)
}

// VariancePercentage returns the variance as a percentage of the projected
// amount, zero when the projected amount is zero.
func (i BudgetLineItem) VariancePercentage() decimal.Decimal {
	if i.ProjectedAmount.IsZero() {
		return decimal.Zero
	}
	return i.Variance().Div(i.ProjectedAmount).Mul(decimal.NewFromInt(100))
}

// RecomputeProjected refreshes the stored ProjectedAmount from the current
// UnitCost and Quantity.
func (i *BudgetLineItem) RecomputeProjected() {
	i.ProjectedAmount = i.UnitCost.Mul(i.Quantity)
}

// BudgetItemPatch is an explicit partial update for a budget line item.
// Nil fields are left untouched by Apply.
type BudgetItemPatch struct {
	Category       *BudgetCategory
	Name           *string
	Description    *string
	VendorName     *string
	CostType       *CostType
	UnitCost       *decimal.Decimal
	Quantity       *decimal.Decimal
	ActualAmount   *decimal.Decimal
	Status         *BudgetStatus
	PaymentDueDate *time.Time
	Notes          *string
}

// TouchesAmounts reports whether applying the patch requires a
// ProjectedAmount recompute (unit cost or quantity supplied).
func (p BudgetItemPatch) TouchesAmounts() bool {
	return p.UnitCost != nil || p.Quantity != nil
}

// Apply merges the supplied fields into the item. The ProjectedAmount
// recompute is an explicit separate step (see TouchesAmounts), not a side
// effect of the merge.
func (p BudgetItemPatch) Apply(item *BudgetLineItem) {
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.VendorName != nil {
		item.VendorName = *p.VendorName
	}
	if p.CostType != nil {
		item.CostType = *p.CostType
	}
	if p.UnitCost != nil {
		item.UnitCost = *p.UnitCost
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.ActualAmount != nil {
		item.ActualAmount = *p.ActualAmount
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.PaymentDueDate != nil {
		item.PaymentDueDate = p.PaymentDueDate
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
}

// BudgetItemFilter selects budget line items by the conjunction of its
// non-empty fields.
type BudgetItemFilter struct {
	EventID  string
	Category BudgetCategory
	Status   BudgetStatus
}

// Matches reports whether the item satisfies every supplied filter field.
func (f BudgetItemFilter) Matches(item BudgetLineItem) bool {
	if f.EventID != "" && item.EventID != f.EventID {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	return true
}
