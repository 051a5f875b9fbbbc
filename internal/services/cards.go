package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/spendview/internal/errors"
	"github.com/example/spendview/internal/models"
)

// cashbackRate is the synthetic rate applied when a spend transaction has no
// usable explicit cashback value: one unit per hundred spent.
var cashbackRate = decimal.NewFromFloat(0.01)

// cashbackExempt lists categories that never earn cashback, in both the
// export's language and English.
var cashbackExempt = map[string]struct{}{
	"переводы": {},
	"наличные": {},
	"transfer": {},
	"cash":     {},
}

type cardTotals struct {
	spent    decimal.Decimal
	cashback decimal.Decimal
}

// AggregateCards groups spend and cashback by card. Transactions without an
// assigned card are skipped; only negative operation amounts count as spend.
// Cards are emitted in first-seen order with both totals rounded to two
// decimals.
//
// A qualifying transaction with no operation amount fails the whole batch
// with ErrMalformedRecord: either every row is counted or none is.
func AggregateCards(transactions []models.Transaction) ([]models.CardSummary, error) {
	totals := make(map[string]*cardTotals)
	var order []string

	for i, tx := range transactions {
		if !tx.HasCard() {
			continue
		}
		if tx.OperationAmount == nil {
			return nil, &errors.ErrMalformedRecord{
				Row:     i,
				Field:   "operation amount",
				Message: "missing",
			}
		}
		if !tx.OperationAmount.IsNegative() {
			continue
		}

		card := strings.TrimSpace(tx.Card)
		entry, seen := totals[card]
		if !seen {
			entry = &cardTotals{}
			totals[card] = entry
			order = append(order, card)
		}

		spent := tx.OperationAmount.Abs()
		entry.spent = entry.spent.Add(spent)
		entry.cashback = entry.cashback.Add(cashbackFor(tx, spent))
	}

	summaries := make([]models.CardSummary, 0, len(order))
	for _, card := range order {
		entry := totals[card]
		summaries = append(summaries, models.CardSummary{
			LastDigits: card,
			TotalSpent: entry.spent.Round(2).InexactFloat64(),
			Cashback:   entry.cashback.Round(2).InexactFloat64(),
		})
	}
	return summaries, nil
}

// cashbackFor computes a single transaction's cashback contribution. An
// explicit non-negative value wins; a negative or absent value falls back to
// the synthetic rate on the spent amount.
func cashbackFor(tx models.Transaction, spent decimal.Decimal) decimal.Decimal {
	category := strings.ToLower(strings.TrimSpace(tx.Category))
	if _, exempt := cashbackExempt[category]; exempt {
		return decimal.Zero
	}
	if tx.Cashback != nil && !tx.Cashback.IsNegative() {
		return *tx.Cashback
	}
	return spent.Mul(cashbackRate)
}
