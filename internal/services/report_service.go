package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/spendview/internal/config"
	"github.com/example/spendview/internal/models"
)

// Greeting messages by time of day.
const (
	greetingMorning = "Доброе утро!"
	greetingDay     = "Добрый день!"
	greetingEvening = "Добрый вечер!"
	greetingNight   = "Доброй ночи!"
)

// Greeting picks the salutation for the given time. Bands are closed on the
// lower bound: [6,10) morning, [10,18) day, [18,22) evening, the rest night.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour >= 6 && hour < 10:
		return greetingMorning
	case hour >= 10 && hour < 18:
		return greetingDay
	case hour >= 18 && hour < 22:
		return greetingEvening
	default:
		return greetingNight
	}
}

// AssembleReport composes the dashboard document from already-computed
// parts. It performs no validation: each part's producer has enforced its
// own contract.
func AssembleReport(greeting string, cards []models.CardSummary, top []models.TopTransaction, rates []models.ExchangeRate, stocks []models.StockQuote) *models.Report {
	return &models.Report{
		Greeting:        greeting,
		Cards:           cards,
		TopTransactions: top,
		ExchangeRates:   rates,
		Stocks:          stocks,
	}
}

// ReportService builds the dashboard report for a reference date.
type ReportService struct {
	rates  RateProvider
	quotes QuoteProvider
	now    func() time.Time
	logger *zap.Logger
}

// NewReportService wires the report pipeline. now supplies the wall clock
// for the greeting; pass time.Now outside tests.
func NewReportService(rates RateProvider, quotes QuoteProvider, now func() time.Time, logger *zap.Logger) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{rates: rates, quotes: quotes, now: now, logger: logger}
}

// Generate filters transactions to the month-to-date window of dateStr,
// aggregates cards and top transactions, fans out the currency and stock
// lookups, and assembles the report. Filtering and aggregation errors abort
// the call; lookup failures surface as null rates/prices in the result.
func (s *ReportService) Generate(ctx context.Context, transactions []models.Transaction, dateStr string, settings *config.UserSettings) (*models.Report, error) {
	reference, err := ParseReferenceDate(dateStr)
	if err != nil {
		return nil, err
	}

	filtered, err := FilterByMonth(transactions, reference)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("filtered transactions",
		zap.String("date", dateStr),
		zap.Int("total", len(transactions)),
		zap.Int("in_window", len(filtered)))

	cards, err := AggregateCards(filtered)
	if err != nil {
		return nil, err
	}

	top, err := TopTransactions(filtered, DefaultTopCount)
	if err != nil {
		return nil, err
	}

	// The two lookups are independent of each other and of the transaction
	// path. Providers never return errors, only absent markers.
	var (
		rates  []models.ExchangeRate
		stocks []models.StockQuote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rates = s.rates.Rates(gctx, settings.Currencies)
		return nil
	})
	g.Go(func() error {
		stocks = s.quotes.Quotes(gctx, settings.Stocks)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return AssembleReport(Greeting(s.now()), cards, top, rates, stocks), nil
}
