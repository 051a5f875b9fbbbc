// Package reader loads the bank's xlsx operations export into transaction
// rows. It is deliberately lenient: a blank or unreadable cell becomes an
// absent field, and the processing stages decide which absences are fatal.
package reader

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/example/spendview/internal/models"
)

// Column titles as they appear in the export's header row.
const (
	colOperationDate   = "Дата операции"
	colPaymentDate     = "Дата платежа"
	colCard            = "Номер карты"
	colOperationAmount = "Сумма операции"
	colPaymentAmount   = "Сумма платежа"
	colCategory        = "Категория"
	colDescription     = "Описание"
	colCashback        = "Кэшбэк"
)

// XLSXReader reads transactions from an operations export file.
type XLSXReader struct{}

func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// Read parses the first sheet of the workbook at path. The first row must be
// the header row; rows after it become transactions in file order.
func (r *XLSXReader) Read(path string) ([]models.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open operations file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("operations file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("operations file %s is empty", path)
	}

	index := headerIndex(rows[0])
	transactions := make([]models.Transaction, 0, len(rows)-1)
	for _, row := range rows[1:] {
		transactions = append(transactions, models.Transaction{
			OperationDate:   cell(row, index[colOperationDate]),
			PaymentDate:     cell(row, index[colPaymentDate]),
			Card:            cell(row, index[colCard]),
			OperationAmount: amount(cell(row, index[colOperationAmount])),
			PaymentAmount:   amount(cell(row, index[colPaymentAmount])),
			Category:        cell(row, index[colCategory]),
			Description:     cell(row, index[colDescription]),
			Cashback:        amount(cell(row, index[colCashback])),
		})
	}
	return transactions, nil
}

// headerIndex maps column titles to positions. Missing columns map to -1 so
// every field of those rows comes back absent.
func headerIndex(header []string) map[string]int {
	index := map[string]int{
		colOperationDate:   -1,
		colPaymentDate:     -1,
		colCard:            -1,
		colOperationAmount: -1,
		colPaymentAmount:   -1,
		colCategory:        -1,
		colDescription:     -1,
		colCashback:        -1,
	}
	for i, title := range header {
		title = strings.TrimSpace(title)
		if _, known := index[title]; known {
			index[title] = i
		}
	}
	return index
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// amount parses a monetary cell. The export writes decimals with either a
// dot or a comma separator.
func amount(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return nil
	}
	return &d
}
