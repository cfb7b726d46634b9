package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/eventops/event_finance_app/internal/apperrors"
	"github.com/eventops/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
)

// BudgetItemRepository is the in-memory store for budget line items. Items
// are keyed by ID for O(1) lookup; insertion order is tracked separately so
// listings stay stable.
type BudgetItemRepository struct {
	mu    sync.RWMutex
	items map[string]domain.BudgetLineItem
	order []string
}

// NewBudgetItemRepository creates an empty budget item repository.
func NewBudgetItemRepository() *BudgetItemRepository {
	return &BudgetItemRepository{
		items: make(map[string]domain.BudgetLineItem),
	}
}

// Ensure BudgetItemRepository implements the facade
var _ portsrepo.BudgetItemRepositoryFacade = (*BudgetItemRepository)(nil)

// SaveBudgetItem appends a new line item.
func (r *BudgetItemRepository) SaveBudgetItem(_ context.Context, item domain.BudgetLineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ItemID]; !exists {
		r.order = append(r.order, item.ItemID)
	}
	r.items[item.ItemID] = item
	return nil
}

// FindBudgetItemByID retrieves a single line item.
func (r *BudgetItemRepository) FindBudgetItemByID(_ context.Context, itemID string) (*domain.BudgetLineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, fmt.Errorf("budget item %s: %w", itemID, apperrors.ErrNotFound)
	}
	return &item, nil
}

// ListBudgetItems returns the items matching every supplied filter field,
// in insertion order.
func (r *BudgetItemRepository) ListBudgetItems(_ context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetLineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.BudgetLineItem, 0, len(r.order))
	for _, id := range r.order {
		if item := r.items[id]; filter.Matches(item) {
			result = append(result, item)
		}
	}
	return result, nil
}

// UpdateBudgetItem replaces the stored item with the same ID.
func (r *BudgetItemRepository) UpdateBudgetItem(_ context.Context, item domain.BudgetLineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ItemID]; !ok {
		return fmt.Errorf("budget item %s: %w", item.ItemID, apperrors.ErrNotFound)
	}
	r.items[item.ItemID] = item
	return nil
}

// DeleteBudgetItem removes the item with the given ID.
func (r *BudgetItemRepository) DeleteBudgetItem(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("budget item %s: %w", itemID, apperrors.ErrNotFound)
	}
	delete(r.items, itemID)
	for i, id := range r.order {
		if id == itemID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every stored item.
func (r *BudgetItemRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]domain.BudgetLineItem)
	r.order = nil
	return nil
}
