package services

import (
	"context"

	"github.com/eventops/event_finance_app/internal/core/domain"
	"github.com/eventops/event_finance_app/internal/dto"
)

// BudgetReaderSvc defines read operations for budget line items.
type BudgetReaderSvc interface {
	// GetBudgetItemByID retrieves a single line item.
	GetBudgetItemByID(ctx context.Context, itemID string) (*domain.BudgetLineItem, error)

	// ListBudgetItems retrieves the items matching the supplied filters.
	ListBudgetItems(ctx context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetLineItem, error)

	// SummarizeBudget aggregates an event's line items into a summary.
	// Zero matching items yields a zero-valued summary, never an error.
	SummarizeBudget(ctx context.Context, eventID string) (*domain.BudgetSummary, error)
}

// BudgetWriterSvc defines write operations for budget line items.
type BudgetWriterSvc interface {
	// CreateBudgetItem creates a draft line item with a computed projected amount.
	CreateBudgetItem(ctx context.Context, req dto.CreateBudgetItemRequest) (*domain.BudgetLineItem, error)

	// UpdateBudgetItem applies a partial update, recomputing the projected
	// amount when unit cost or quantity change.
	UpdateBudgetItem(ctx context.Context, itemID string, req dto.UpdateBudgetItemRequest) (*domain.BudgetLineItem, error)

	// DeleteBudgetItem removes a line item.
	DeleteBudgetItem(ctx context.Context, itemID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces.
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
