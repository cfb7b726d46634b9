package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/eventops/event_finance_app/internal/apperrors"
	"github.com/eventops/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
)

// TransactionRepository is the in-memory store for monetary transactions,
// keyed by ID with insertion order tracked separately.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]domain.Transaction
	order        []string
}

// NewTransactionRepository creates an empty transaction repository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		transactions: make(map[string]domain.Transaction),
	}
}

// Ensure TransactionRepository implements the facade
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// SaveTransaction appends a new transaction.
func (r *TransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transactions[txn.TransactionID]; !exists {
		r.order = append(r.order, txn.TransactionID)
	}
	r.transactions[txn.TransactionID] = txn
	return nil
}

// FindTransactionByID retrieves a single transaction.
func (r *TransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txn, ok := r.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return &txn, nil
}

// ListTransactions returns the transactions matching every supplied filter
// field, in insertion order.
func (r *TransactionRepository) ListTransactions(_ context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Transaction, 0, len(r.order))
	for _, id := range r.order {
		if txn := r.transactions[id]; filter.Matches(txn) {
			result = append(result, txn)
		}
	}
	return result, nil
}

// Clear removes every stored transaction.
func (r *TransactionRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = make(map[string]domain.Transaction)
	r.order = nil
	return nil
}
