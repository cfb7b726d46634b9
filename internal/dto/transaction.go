package dto

import (
	"time"

	"github.com/eventops/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a transaction.
type RecordTransactionRequest struct {
	EventID          string                 `json:"eventID" binding:"required,uuid"`
	BudgetLineItemID string                 `json:"budgetLineItemID" binding:"omitempty,uuid"`
	TransactionType  domain.TransactionType `json:"transactionType" binding:"required,oneof=income expense refund adjustment"`
	Amount           decimal.Decimal        `json:"amount" binding:"gte=0"`
	Currency         domain.CurrencyCode    `json:"currency" binding:"omitempty,oneof=USD EUR GBP JPY KRW CNY SGD AUD"`
	PaymentMethod    domain.PaymentMethod   `json:"paymentMethod" binding:"required,oneof=cash credit_card bank_transfer check invoice"`
	Description      string                 `json:"description" binding:"required,max=500"`
	ReferenceNumber  string                 `json:"referenceNumber" binding:"omitempty,max=100"`
	VendorName       string                 `json:"vendorName" binding:"omitempty,max=200"`
	RecordedBy       string                 `json:"recordedBy" binding:"required,max=200"`
	Notes            string                 `json:"notes" binding:"omitempty,max=500"`
}

// ListTransactionsParams binds the optional transaction list filters.
type ListTransactionsParams struct {
	EventID          string `form:"event_id" binding:"omitempty,uuid"`
	BudgetLineItemID string `form:"budget_line_item_id" binding:"omitempty,uuid"`
	TransactionType  string `form:"transaction_type" binding:"omitempty,oneof=income expense refund adjustment"`
}

// ToFilter converts the bound params into the domain filter.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		EventID:          p.EventID,
		BudgetLineItemID: p.BudgetLineItemID,
		TransactionType:  domain.TransactionType(p.TransactionType),
	}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID    string                 `json:"transactionID"`
	EventID          string                 `json:"eventID"`
	BudgetLineItemID string                 `json:"budgetLineItemID,omitempty"`
	TransactionType  domain.TransactionType `json:"transactionType"`
	Amount           decimal.Decimal        `json:"amount"`
	Currency         domain.CurrencyCode    `json:"currency"`
	PaymentMethod    domain.PaymentMethod   `json:"paymentMethod"`
	Description      string                 `json:"description"`
	ReferenceNumber  string                 `json:"referenceNumber,omitempty"`
	VendorName       string                 `json:"vendorName,omitempty"`
	TransactionDate  time.Time              `json:"transactionDate"`
	RecordedBy       string                 `json:"recordedBy"`
	IsReconciled     bool                   `json:"isReconciled"`
	Notes            string                 `json:"notes,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		EventID:          txn.EventID,
		BudgetLineItemID: txn.BudgetLineItemID,
		TransactionType:  txn.TransactionType,
		Amount:           txn.Amount,
		Currency:         txn.Currency,
		PaymentMethod:    txn.PaymentMethod,
		Description:      txn.Description,
		ReferenceNumber:  txn.ReferenceNumber,
		VendorName:       txn.VendorName,
		TransactionDate:  txn.TransactionDate,
		RecordedBy:       txn.RecordedBy,
		IsReconciled:     txn.IsReconciled,
		Notes:            txn.Notes,
	}
}

// ListTransactionsResponse wraps a list of transaction DTOs.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res}
}
