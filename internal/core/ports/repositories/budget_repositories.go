package repositories

import (
	"context"

	"github.com/eventops/event_finance_app/internal/core/domain"
)

// BudgetItemReader defines read operations for budget line items.
type BudgetItemReader interface {
	// FindBudgetItemByID retrieves a single line item.
	// Returns apperrors.ErrNotFound when no item has the given ID.
	FindBudgetItemByID(ctx context.Context, itemID string) (*domain.BudgetLineItem, error)

	// ListBudgetItems retrieves the items matching every supplied filter
	// field, in insertion order.
	ListBudgetItems(ctx context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetLineItem, error)
}

// BudgetItemWriter defines write operations for budget line items.
type BudgetItemWriter interface {
	// SaveBudgetItem appends a new line item.
	SaveBudgetItem(ctx context.Context, item domain.BudgetLineItem) error

	// UpdateBudgetItem replaces the stored item with the same ID.
	// Returns apperrors.ErrNotFound when no item has the given ID.
	UpdateBudgetItem(ctx context.Context, item domain.BudgetLineItem) error

	// DeleteBudgetItem removes the item with the given ID.
	// Returns apperrors.ErrNotFound when no item has the given ID.
	DeleteBudgetItem(ctx context.Context, itemID string) error

	// Clear removes every stored item.
	Clear(ctx context.Context) error
}

// BudgetItemRepositoryFacade combines all budget item repository interfaces.
type BudgetItemRepositoryFacade interface {
	BudgetItemReader
	BudgetItemWriter
}
