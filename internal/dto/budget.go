package dto

import (
	"time"

	"github.com/eventops/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetItemRequest defines the data needed to create a budget line item.
// Status is not accepted: new items always start as draft.
type CreateBudgetItemRequest struct {
	EventID        string                `json:"eventID" binding:"required,uuid"`
	Category       domain.BudgetCategory `json:"category" binding:"required,oneof=venue food_beverage audio_visual production marketing printing transportation accommodation speaker entertainment staffing security insurance technology registration signage gifts_awards miscellaneous contingency tax gratuity"`
	Name           string                `json:"name" binding:"required,max=200"`
	Description    string                `json:"description" binding:"omitempty,max=1000"`
	VendorName     string                `json:"vendorName" binding:"omitempty,max=200"`
	CostType       domain.CostType       `json:"costType" binding:"omitempty,oneof=fixed variable"`
	UnitCost       decimal.Decimal       `json:"unitCost" binding:"gte=0"`
	Quantity       *decimal.Decimal      `json:"quantity" binding:"omitempty,gte=0"`
	Currency       domain.CurrencyCode   `json:"currency" binding:"omitempty,oneof=USD EUR GBP JPY KRW CNY SGD AUD"`
	PaymentDueDate *time.Time            `json:"paymentDueDate"`
	Notes          string                `json:"notes" binding:"omitempty,max=500"`
}

// UpdateBudgetItemRequest defines a partial update; only supplied fields change.
type UpdateBudgetItemRequest struct {
	Category       *domain.BudgetCategory `json:"category" binding:"omitempty,oneof=venue food_beverage audio_visual production marketing printing transportation accommodation speaker entertainment staffing security insurance technology registration signage gifts_awards miscellaneous contingency tax gratuity"`
	Name           *string                `json:"name" binding:"omitempty,max=200"`
	Description    *string                `json:"description" binding:"omitempty,max=1000"`
	VendorName     *string                `json:"vendorName" binding:"omitempty,max=200"`
	CostType       *domain.CostType       `json:"costType" binding:"omitempty,oneof=fixed variable"`
	UnitCost       *decimal.Decimal       `json:"unitCost" binding:"omitempty,gte=0"`
	Quantity       *decimal.Decimal       `json:"quantity" binding:"omitempty,gte=0"`
	ActualAmount   *decimal.Decimal       `json:"actualAmount" binding:"omitempty,gte=0"`
	Status         *domain.BudgetStatus   `json:"status" binding:"omitempty,oneof=draft pending_approval approved committed paid cancelled"`
	PaymentDueDate *time.Time             `json:"paymentDueDate"`
	Notes          *string                `json:"notes" binding:"omitempty,max=500"`
}

// ToPatch converts the request into the explicit domain patch.
func (r UpdateBudgetItemRequest) ToPatch() domain.BudgetItemPatch {
	return domain.BudgetItemPatch{
		Category:       r.Category,
		Name:           r.Name,
		Description:    r.Description,
		VendorName:     r.VendorName,
		CostType:       r.CostType,
		UnitCost:       r.UnitCost,
		Quantity:       r.Quantity,
		ActualAmount:   r.ActualAmount,
		Status:         r.Status,
		PaymentDueDate: r.PaymentDueDate,
		Notes:          r.Notes,
	}
}

// ListBudgetItemsParams binds the optional budget item list filters.
type ListBudgetItemsParams struct {
	EventID  string `form:"event_id" binding:"omitempty,uuid"`
	Category string `form:"category" binding:"omitempty,oneof=venue food_beverage audio_visual production marketing printing transportation accommodation speaker entertainment staffing security insurance technology registration signage gifts_awards miscellaneous contingency tax gratuity"`
	Status   string `form:"status" binding:"omitempty,oneof=draft pending_approval approved committed paid cancelled"`
}

// ToFilter converts the bound params into the domain filter.
func (p ListBudgetItemsParams) ToFilter() domain.BudgetItemFilter {
	return domain.BudgetItemFilter{
		EventID:  p.EventID,
		Category: domain.BudgetCategory(p.Category),
		Status:   domain.BudgetStatus(p.Status),
	}
}

// BudgetItemResponse defines the data returned for a budget line item,
// including the read-time derived variance fields.
type BudgetItemResponse struct {
	ItemID             string                `json:"itemID"`
	EventID            string                `json:"eventID"`
	Category           domain.BudgetCategory `json:"category"`
	Name               string                `json:"name"`
	Description        string                `json:"description,omitempty"`
	VendorName         string                `json:"vendorName,omitempty"`
	CostType           domain.CostType       `json:"costType"`
	UnitCost           decimal.Decimal       `json:"unitCost"`
	Quantity           decimal.Decimal       `json:"quantity"`
	ProjectedAmount    decimal.Decimal       `json:"projectedAmount"`
	ActualAmount       decimal.Decimal       `json:"actualAmount"`
	Variance           decimal.Decimal       `json:"variance"`
	VariancePercentage decimal.Decimal       `json:"variancePercentage"`
	Currency           domain.CurrencyCode   `json:"currency"`
	Status             domain.BudgetStatus   `json:"status"`
	PaymentDueDate     *time.Time            `json:"paymentDueDate,omitempty"`
	Notes              string                `json:"notes,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

// ToBudgetItemResponse converts a domain.BudgetLineItem to its response DTO.
func ToBudgetItemResponse(item *domain.BudgetLineItem) BudgetItemResponse {
	return BudgetItemResponse{
		ItemID:             item.ItemID,
		EventID:            item.EventID,
		Category:           item.Category,
		Name:               item.Name,
		Description:        item.Description,
		VendorName:         item.VendorName,
		CostType:           item.CostType,
		UnitCost:           item.UnitCost,
		Quantity:           item.Quantity,
		ProjectedAmount:    item.ProjectedAmount,
		ActualAmount:       item.ActualAmount,
		Variance:           item.Variance(),
		VariancePercentage: item.VariancePercentage(),
		Currency:           item.Currency,
		Status:             item.Status,
		PaymentDueDate:     item.PaymentDueDate,
		Notes:              item.Notes,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
}

// ListBudgetItemsResponse wraps a list of budget item DTOs.
type ListBudgetItemsResponse struct {
	Items []BudgetItemResponse `json:"items"`
}

// ToListBudgetItemsResponse converts a slice of domain items to the list DTO.
func ToListBudgetItemsResponse(items []domain.BudgetLineItem) ListBudgetItemsResponse {
	res := make([]BudgetItemResponse, len(items))
	for i := range items {
		res[i] = ToBudgetItemResponse(&items[i])
	}
	return ListBudgetItemsResponse{Items: res}
}

// BudgetSummaryResponse defines the data returned for a budget summary.
type BudgetSummaryResponse struct {
	EventID        string                                             `json:"eventID"`
	TotalItems     int                                                `json:"totalItems"`
	TotalProjected decimal.Decimal                                    `json:"totalProjected"`
	TotalActual    decimal.Decimal                                    `json:"totalActual"`
	TotalVariance  decimal.Decimal                                    `json:"totalVariance"`
	ByCategory     map[domain.BudgetCategory]domain.CategoryBreakdown `json:"byCategory"`
	ByStatus       map[domain.BudgetStatus]int                        `json:"byStatus"`
}

// ToBudgetSummaryResponse converts a domain.BudgetSummary to its response DTO.
func ToBudgetSummaryResponse(eventID string, summary *domain.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		EventID:        eventID,
		TotalItems:     summary.TotalItems,
		TotalProjected: summary.TotalProjected,
		TotalActual:    summary.TotalActual,
		TotalVariance:  summary.TotalVariance,
		ByCategory:     summary.ByCategory,
		ByStatus:       summary.ByStatus,
	}
}
