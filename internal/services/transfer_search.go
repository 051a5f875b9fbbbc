package services

import (
	"regexp"
	"strings"

	"github.com/example/spendview/internal/models"
)

// personPattern matches descriptions like "Валерий А." — a capitalized name
// followed by an initial, the form the export uses for transfers to private
// persons.
var personPattern = regexp.MustCompile(`\b[А-ЯЁ][а-яё]*\s[А-ЯЁ]\.`)

const transfersCategory = "переводы"

// SearchTransfersToIndividuals returns the transactions that are transfers
// to private persons: category "Переводы" with a person-shaped description.
// Input order is preserved.
func SearchTransfersToIndividuals(transactions []models.Transaction) []models.Transaction {
	var matches []models.Transaction
	for _, tx := range transactions {
		if !strings.EqualFold(strings.TrimSpace(tx.Category), transfersCategory) {
			continue
		}
		if personPattern.MatchString(tx.Description) {
			matches = append(matches, tx)
		}
	}
	return matches
}

// TransferEntries maps search results to their wire shape.
func TransferEntries(transactions []models.Transaction) []models.TransferEntry {
	entries := make([]models.TransferEntry, 0, len(transactions))
	for _, tx := range transactions {
		entry := models.TransferEntry{
			Date:        tx.OperationDate,
			Category:    tx.Category,
			Description: tx.Description,
		}
		if tx.OperationAmount != nil {
			amount := tx.OperationAmount.InexactFloat64()
			entry.Amount = &amount
		}
		entries = append(entries, entry)
	}
	return entries
}
