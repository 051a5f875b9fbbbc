package services

import (
	"context"

	"github.com/example/spendview/internal/models"
)

// TransactionReader supplies transaction rows from the operations export.
type TransactionReader interface {
	Read(path string) ([]models.Transaction, error)
}

// RateProvider resolves exchange rates for a list of currency codes. The
// result has one entry per code in input order; a code that could not be
// resolved gets a nil rate, never an error.
type RateProvider interface {
	Rates(ctx context.Context, codes []string) []models.ExchangeRate
}

// QuoteProvider resolves prices for a list of stock symbols with the same
// per-item contract as RateProvider.
type QuoteProvider interface {
	Quotes(ctx context.Context, symbols []string) []models.StockQuote
}
