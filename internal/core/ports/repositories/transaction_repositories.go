package repositories

import (
	"context"

	"github.com/eventops/event_finance_app/internal/core/domain"
)

// TransactionReader defines read operations for monetary transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	// Returns apperrors.ErrNotFound when no transaction has the given ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the transactions matching every supplied
	// filter field, in insertion order.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for monetary transactions.
type TransactionWriter interface {
	// SaveTransaction appends a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// Clear removes every stored transaction.
	Clear(ctx context.Context) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
