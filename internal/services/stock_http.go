package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/spendview/internal/models"
)

// defaultQuoteBaseURL is the Alpha Vantage query endpoint used for stock
// quotes.
const defaultQuoteBaseURL = "https://www.alphavantage.co/query"

// HTTPQuoteProvider resolves stock prices in USD against an external HTTP
// API.
type HTTPQuoteProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPQuoteProvider builds a quote provider. baseURL overrides the
// default endpoint and exists for tests.
func NewHTTPQuoteProvider(apiKey, baseURL string, logger *zap.Logger) *HTTPQuoteProvider {
	if baseURL == "" {
		baseURL = defaultQuoteBaseURL
	}
	return &HTTPQuoteProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Quotes resolves each symbol independently with the same per-item
// containment as HTTPRateProvider.Rates.
func (p *HTTPQuoteProvider) Quotes(ctx context.Context, symbols []string) []models.StockQuote {
	quotes := make([]models.StockQuote, 0, len(symbols))
	for _, symbol := range symbols {
		entry := models.StockQuote{Stock: symbol}
		price, err := p.fetchQuote(ctx, symbol)
		if err != nil {
			p.logger.Warn("stock quote lookup failed",
				zap.String("symbol", symbol),
				zap.Error(err))
		} else {
			entry.Price = &price
		}
		quotes = append(quotes, entry)
	}
	return quotes
}

// globalQuoteResponse is the GLOBAL_QUOTE payload shape. The price arrives
// as a quoted decimal string.
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
}

func (p *HTTPQuoteProvider) fetchQuote(ctx context.Context, symbol string) (float64, error) {
	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", strings.ToUpper(symbol))
	query.Set("apikey", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var payload globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if payload.GlobalQuote.Price == "" {
		return 0, fmt.Errorf("no quote for %s", symbol)
	}

	price, err := strconv.ParseFloat(payload.GlobalQuote.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", payload.GlobalQuote.Price, err)
	}
	return price, nil
}
