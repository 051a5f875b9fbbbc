package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperationTime(t *testing.T) {
	tx := &Transaction{OperationDate: "31.12.2021 16:44:00"}
	ts, err := tx.ParseOperationTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 12, 31, 16, 44, 0, 0, time.UTC), ts)

	tx = &Transaction{OperationDate: "2021-12-31"}
	_, err = tx.ParseOperationTime()
	assert.Error(t, err)
}

func TestHasCard(t *testing.T) {
	tests := []struct {
		name string
		card string
		want bool
	}{
		{"assigned", "*7197", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"nan placeholder", "nan", false},
		{"nan uppercase", "NaN", false},
		{"nan padded", " nan ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &Transaction{Card: tt.card}
			assert.Equal(t, tt.want, tx.HasCard())
		})
	}
}

func TestReportRoundTrip(t *testing.T) {
	rate := 92.5
	report := Report{
		Greeting: "Добрый день!",
		Cards: []CardSummary{
			{LastDigits: "7197", TotalSpent: 1500, Cashback: 5},
		},
		TopTransactions: []TopTransaction{
			{Date: "21.12.2021", Amount: -1198.23, Category: "Переводы", Description: "Перевод Кредитная карта"},
		},
		ExchangeRates: []ExchangeRate{
			{Currency: "USD", Rate: &rate},
			{Currency: "XYZ", Rate: nil},
		},
		Stocks: []StockQuote{
			{Stock: "AAPL", Price: nil},
		},
	}

	raw, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"last_digits":"7197"`)
	assert.Contains(t, string(raw), `"total_spent":1500`)
	assert.Contains(t, string(raw), `{"currency":"XYZ","rate":null}`)

	var back Report
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, report, back)
}
