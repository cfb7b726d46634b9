package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a monetary transaction.
type TransactionType string

const (
	TxnIncome     TransactionType = "income"
	TxnExpense    TransactionType = "expense"
	TxnRefund     TransactionType = "refund"
	TxnAdjustment TransactionType = "adjustment"
)

// PaymentMethod is the settlement channel for a transaction.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
	PaymentInvoice      PaymentMethod = "invoice"
)

// Transaction is a recorded monetary movement for an event, optionally tied
// to a budget line item.
type Transaction struct {
	TransactionID    string          `json:"transactionID"`
	EventID          string          `json:"eventID"`
	BudgetLineItemID string          `json:"budgetLineItemID"` // empty when unlinked
	TransactionType  TransactionType `json:"transactionType"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         CurrencyCode    `json:"currency"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	Description      string          `json:"description"`
	ReferenceNumber  string          `json:"referenceNumber"`
	VendorName       string          `json:"vendorName"`
	TransactionDate  time.Time       `json:"transactionDate"`
	RecordedBy       string          `json:"recordedBy"`
	IsReconciled     bool            `json:"isReconciled"`
	Notes            string          `json:"notes"`
}

// TransactionFilter selects transactions by the conjunction of its non-empty
// fields.
type TransactionFilter struct {
	EventID          string
	BudgetLineItemID string
	TransactionType  TransactionType
}

// Matches reports whether the transaction satisfies every supplied filter field.
func (f TransactionFilter) Matches(txn Transaction) bool {
	if f.EventID != "" && txn.EventID != f.EventID {
		return false
	}
	if f.BudgetLineItemID != "" && txn.BudgetLineItemID != f.BudgetLineItemID {
		return false
	}
	if f.TransactionType != "" && txn.TransactionType != f.TransactionType {
		return false
	}
	return true
}
