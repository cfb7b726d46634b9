package domain

import "time"

// Timestamps holds standard creation/update audit information for domain entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CurrencyCode is an ISO 4217 currency code supported by the API.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	JPY CurrencyCode = "JPY"
	KRW CurrencyCode = "KRW"
	CNY CurrencyCode = "CNY"
	SGD CurrencyCode = "SGD"
	AUD CurrencyCode = "AUD"
)
