package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/spendview/internal/config"
	"github.com/example/spendview/internal/models"
	"github.com/example/spendview/internal/services"
)

type staticRates struct{}

func (staticRates) Rates(_ context.Context, codes []string) []models.ExchangeRate {
	out := make([]models.ExchangeRate, 0, len(codes))
	for _, code := range codes {
		rate := 90.0
		out = append(out, models.ExchangeRate{Currency: code, Rate: &rate})
	}
	return out
}

type staticQuotes struct{}

func (staticQuotes) Quotes(_ context.Context, symbols []string) []models.StockQuote {
	out := make([]models.StockQuote, 0, len(symbols))
	for _, symbol := range symbols {
		out = append(out, models.StockQuote{Stock: symbol})
	}
	return out
}

func testAmount(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func testRouter(t *testing.T, transactions []models.Transaction) *mux.Router {
	t.Helper()

	now := func() time.Time { return time.Date(2019, 3, 7, 12, 0, 0, 0, time.UTC) }
	svc := services.NewReportService(staticRates{}, staticQuotes{}, now, zap.NewNop())
	settings := &config.UserSettings{Currencies: []string{"USD"}, Stocks: []string{"AAPL"}}
	handler := NewReportHandler(svc, transactions, settings, zap.NewNop())

	router := mux.NewRouter()
	handler.Register(router)
	return router
}

func TestHandleReport(t *testing.T) {
	transactions := []models.Transaction{
		{
			OperationDate:   "05.03.2019 10:00:00",
			Card:            "*7197",
			OperationAmount: testAmount(-250),
			PaymentAmount:   testAmount(-250),
			Category:        "Супермаркеты",
			Description:     "Колхоз",
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/report?date=07.03.2019", nil)
	rec := httptest.NewRecorder()
	testRouter(t, transactions).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Добрый день!", report.Greeting)
	require.Len(t, report.Cards, 1)
	assert.Equal(t, 250.0, report.Cards[0].TotalSpent)
	assert.Equal(t, 2.5, report.Cards[0].Cashback)
	require.Len(t, report.ExchangeRates, 1)
	require.NotNil(t, report.ExchangeRates[0].Rate)
	require.Len(t, report.Stocks, 1)
	assert.Nil(t, report.Stocks[0].Price)
}

func TestHandleReportMissingDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReportBadDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/report?date=2019-03-07", nil)
	rec := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReportMalformedData(t *testing.T) {
	transactions := []models.Transaction{
		{OperationDate: "garbage"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/report?date=07.03.2019", nil)
	rec := httptest.NewRecorder()
	testRouter(t, transactions).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload["error"], "malformed record")
}

func TestHandleTransferSearch(t *testing.T) {
	transactions := []models.Transaction{
		{Category: "Переводы", Description: "Валерий А.", OperationDate: "01.03.2019 10:00:00", OperationAmount: testAmount(-3000)},
		{Category: "Супермаркеты", Description: "Колхоз", OperationDate: "01.03.2019 11:00:00", OperationAmount: testAmount(-100)},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transfers/individuals", nil)
	rec := httptest.NewRecorder()
	testRouter(t, transactions).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.TransferEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Валерий А.", entries[0].Description)
}

func TestHandleSpending(t *testing.T) {
	transactions := []models.Transaction{
		{OperationDate: "15.02.2019 10:00:00", Category: "Супермаркеты", OperationAmount: testAmount(-100)},
		{OperationDate: "15.02.2019 10:00:00", Category: "Переводы", OperationAmount: testAmount(-900)},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/reports/spending?category=Супермаркеты&date=07.03.2019", nil)
	rec := httptest.NewRecorder()
	testRouter(t, transactions).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Category   string  `json:"category"`
		TotalSpent float64 `json:"total_spent"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Супермаркеты", payload.Category)
	assert.Equal(t, 100.0, payload.TotalSpent)
}

func TestHandleSpendingMissingCategory(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/reports/spending?date=07.03.2019", nil)
	rec := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
