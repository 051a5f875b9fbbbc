package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/spendview/internal/errors"
	"github.com/example/spendview/internal/models"
)

// SpendingByCategory sums spend for one category over the three months
// ending at the reference day (inclusive). Only negative operation amounts
// count; the category comparison ignores case and surrounding whitespace.
// The total is rounded to two decimals.
//
// An in-category row with an unparsable operation timestamp, or an
// in-window one missing its operation amount, fails the whole call.
func SpendingByCategory(transactions []models.Transaction, category string, reference time.Time) (float64, error) {
	start := reference.AddDate(0, -3, 0)
	end := reference.AddDate(0, 0, 1)
	want := strings.ToLower(strings.TrimSpace(category))

	total := decimal.Zero
	for i, tx := range transactions {
		if strings.ToLower(strings.TrimSpace(tx.Category)) != want {
			continue
		}
		ts, err := tx.ParseOperationTime()
		if err != nil {
			return 0, &errors.ErrMalformedRecord{
				Row:     i,
				Field:   "operation date",
				Message: "unparsable timestamp " + tx.OperationDate,
			}
		}
		if ts.Before(start) || ts.After(end) {
			continue
		}
		if tx.OperationAmount == nil {
			return 0, &errors.ErrMalformedRecord{Row: i, Field: "operation amount", Message: "missing"}
		}
		if tx.OperationAmount.IsNegative() {
			total = total.Add(tx.OperationAmount.Abs())
		}
	}
	return total.Round(2).InexactFloat64(), nil
}
