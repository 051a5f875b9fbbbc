package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Timestamp layouts used by the bank export.
const (
	OperationTimeLayout = "02.01.2006 15:04:05"
	DateLayout          = "02.01.2006"
)

// Transaction is one row of the operations export, as delivered by the
// reader. Timestamps stay raw strings and amounts are nil when the cell was
// blank: whether a missing or unparsable field is an error is decided by the
// component that needs it, not at read time.
type Transaction struct {
	OperationDate   string
	PaymentDate     string
	Card            string
	OperationAmount *decimal.Decimal
	PaymentAmount   *decimal.Decimal
	Category        string
	Description     string
	Cashback        *decimal.Decimal
}

// ParseOperationTime parses the full operation timestamp.
func (t *Transaction) ParseOperationTime() (time.Time, error) {
	return time.Parse(OperationTimeLayout, t.OperationDate)
}

// HasCard reports whether the row is attributable to a card. Blank cells and
// the "nan" placeholder the export uses for unassigned rows both count as no
// card.
func (t *Transaction) HasCard() bool {
	card := strings.TrimSpace(t.Card)
	return card != "" && !strings.EqualFold(card, "nan")
}
