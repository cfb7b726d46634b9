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

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetItemRepositoryFacade
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo portsrepo.BudgetItemRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo}
}

// Ensure budgetService implements the BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudgetItem creates a draft line item. The projected amount is
// computed once here from unit cost and quantity; creation never fails
// beyond repository errors.
func (s *budgetService) CreateBudgetItem(ctx context.Context, req dto.CreateBudgetItemRequest) (*domain.BudgetLineItem, error) {
	now := time.Now().UTC()

	costType := req.CostType
	if costType == "" {
		costType = domain.CostVariable
	}
	currency := req.Currency
	if currency == "" {
		currency = domain.USD
	}
	quantity := decimal.NewFromInt(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item := domain.BudgetLineItem{
		ItemID:         uuid.NewString(),
		EventID:        req.EventID,
		Category:       req.Category,
		Name:           req.Name,
		Description:    req.Description,
		VendorName:     req.VendorName,
		CostType:       costType,
		UnitCost:       req.UnitCost,
		Quantity:       quantity,
		ActualAmount:   decimal.Zero,
		Currency:       currency,
		Status:         domain.BudgetDraft,
		PaymentDueDate: req.PaymentDueDate,
		Notes:          req.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	item.RecomputeProjected()

	if err := s.budgetRepo.SaveBudgetItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save budget item", slog.String("event_id", req.EventID))
		return nil, fmt.Errorf("failed to create budget item: %w", err)
	}

	s.LogInfo(ctx, "Budget item created",
		slog.String("item_id", item.ItemID),
		slog.String("event_id", item.EventID),
		slog.String("projected_amount", item.ProjectedAmount.String()))
	return &item, nil
}

// GetBudgetItemByID retrieves a single line item.
func (s *budgetService) GetBudgetItemByID(ctx context.Context, itemID string) (*domain.BudgetLineItem, error) {
	item, err := s.budgetRepo.FindBudgetItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget item %s: %w", itemID, err)
	}
	return item, nil
}

// ListBudgetItems retrieves the items matching the supplied filters.
func (s *budgetService) ListBudgetItems(ctx context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetLineItem, error) {
	items, err := s.budgetRepo.ListBudgetItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	if items == nil {
		return []domain.BudgetLineItem{}, nil
	}
	return items, nil
}

// SummarizeBudget aggregates an event's line items. Zero matching items
// yields a zero-valued summary, never an error.
func (s *budgetService) SummarizeBudget(ctx context.Context, eventID string) (*domain.BudgetSummary, error) {
	items, err := s.budgetRepo.ListBudgetItems(ctx, domain.BudgetItemFilter{EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items for summary: %w", err)
	}

	summary := domain.SummarizeBudget(items)
	s.LogInfo(ctx, "Budget summary computed",
		slog.String("event_id", eventID),
		slog.Int("total_items", summary.TotalItems))
	return &summary, nil
}

// UpdateBudgetItem applies a partial update. When unit cost or quantity is
// among the supplied fields, the projected amount is recomputed from the
// post-merge values of both. The update timestamp is always refreshed.
func (s *budgetService) UpdateBudgetItem(ctx context.Context, itemID string, req dto.UpdateBudgetItemRequest) (*domain.BudgetLineItem, error) {
	item, err := s.budgetRepo.FindBudgetItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget item %s for update: %w", itemID, err)
	}

	patch := req.ToPatch()
	patch.Apply(item)
	if patch.TouchesAmounts() {
		item.RecomputeProjected()
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.budgetRepo.UpdateBudgetItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update budget item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update budget item %s: %w", itemID, err)
	}

	s.LogInfo(ctx, "Budget item updated", slog.String("item_id", itemID))
	return item, nil
}

// DeleteBudgetItem removes a line item. No cascading effects on other entities.
func (s *budgetService) DeleteBudgetItem(ctx context.Context, itemID string) error {
	if err := s.budgetRepo.DeleteBudgetItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete budget item %s: %w", itemID, err)
	}
	s.LogInfo(ctx, "Budget item deleted", slog.String("item_id", itemID))
	return nil
}
