package services

import (
	"sort"

	"github.com/example/spendview/internal/errors"
	"github.com/example/spendview/internal/models"
)

// DefaultTopCount is how many transactions the dashboard shows.
const DefaultTopCount = 5

// TopTransactions ranks transactions by descending absolute payment amount
// and returns the first n as display entries. The sort is stable, so ties
// keep input order. Fewer than n inputs return all of them.
//
// Every input row must carry a payment amount, an operation amount and a
// parsable operation timestamp; otherwise the whole call fails with
// ErrMalformedRecord.
func TopTransactions(transactions []models.Transaction, n int) ([]models.TopTransaction, error) {
	if n <= 0 {
		n = DefaultTopCount
	}

	for i, tx := range transactions {
		if tx.PaymentAmount == nil {
			return nil, &errors.ErrMalformedRecord{Row: i, Field: "payment amount", Message: "missing"}
		}
		if tx.OperationAmount == nil {
			return nil, &errors.ErrMalformedRecord{Row: i, Field: "operation amount", Message: "missing"}
		}
		if _, err := tx.ParseOperationTime(); err != nil {
			return nil, &errors.ErrMalformedRecord{
				Row:     i,
				Field:   "operation date",
				Message: "unparsable timestamp " + tx.OperationDate,
			}
		}
	}

	ranked := make([]models.Transaction, len(transactions))
	copy(ranked, transactions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PaymentAmount.Abs().GreaterThan(ranked[j].PaymentAmount.Abs())
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	top := make([]models.TopTransaction, 0, len(ranked))
	for _, tx := range ranked {
		ts, _ := tx.ParseOperationTime()
		top = append(top, models.TopTransaction{
			Date:        ts.Format(models.DateLayout),
			Amount:      tx.OperationAmount.InexactFloat64(),
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	return top, nil
}
