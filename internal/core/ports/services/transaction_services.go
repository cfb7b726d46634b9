package services

import (
	"context"

	"github.com/eventops/event_finance_app/internal/core/domain"
	"github.com/eventops/event_finance_app/internal/dto"
)

// TransactionReaderSvc defines read operations for monetary transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the transactions matching the supplied filters.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for monetary transactions.
type TransactionWriterSvc interface {
	// RecordTransaction records a new monetary transaction.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
