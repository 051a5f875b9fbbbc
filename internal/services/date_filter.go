package services

import (
	"time"

	"github.com/example/spendview/internal/errors"
	"github.com/example/spendview/internal/models"
)

// ParseReferenceDate parses the day-precision reference date the dashboard
// is generated for, e.g. "07.03.2019".
func ParseReferenceDate(input string) (time.Time, error) {
	date, err := time.Parse(models.DateLayout, input)
	if err != nil {
		return time.Time{}, &errors.ErrInvalidArgument{
			Field:   "date",
			Value:   input,
			Message: "expected DD.MM.YYYY",
		}
	}
	return date, nil
}

// FilterByMonth returns the transactions whose operation timestamp falls in
// the month-to-date window of reference: from the first day of the month at
// 00:00 through the end of the reference day. The end bound is reference
// plus one day so a day-precision reference still covers transactions
// timestamped later that same day. Input order is preserved.
//
// Any transaction whose operation timestamp does not parse fails the whole
// call with ErrMalformedRecord.
func FilterByMonth(transactions []models.Transaction, reference time.Time) ([]models.Transaction, error) {
	start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	end := reference.AddDate(0, 0, 1)

	var filtered []models.Transaction
	for i, tx := range transactions {
		ts, err := tx.ParseOperationTime()
		if err != nil {
			return nil, &errors.ErrMalformedRecord{
				Row:     i,
				Field:   "operation date",
				Message: "unparsable timestamp " + tx.OperationDate,
			}
		}
		if !ts.Before(start) && !ts.After(end) {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}
