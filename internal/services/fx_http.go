package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/spendview/internal/models"
)

// defaultRateBaseURL is the exchangerate-api latest-rates endpoint. The
// free v4 endpoint needs no key; with a key the v6 endpoint is used.
const defaultRateBaseURL = "https://api.exchangerate-api.com/v4/latest"

// HTTPRateProvider resolves exchange rates against an external HTTP API.
// Rates are quoted in the target currency per one unit of the requested
// code.
type HTTPRateProvider struct {
	baseURL    string
	target     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPRateProvider builds a rate provider quoting in target (e.g. "RUB").
// apiKey may be empty; baseURL overrides the default endpoint and exists for
// tests.
func NewHTTPRateProvider(apiKey, target, baseURL string, logger *zap.Logger) *HTTPRateProvider {
	if baseURL == "" {
		baseURL = defaultRateBaseURL
		if apiKey != "" {
			baseURL = "https://v6.exchangerate-api.com/v6/" + apiKey + "/latest"
		}
	}
	return &HTTPRateProvider{
		baseURL:    baseURL,
		target:     strings.ToUpper(target),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Rates resolves each code independently. A failed lookup logs a warning and
// yields a nil rate for that code; it never fails the batch.
func (p *HTTPRateProvider) Rates(ctx context.Context, codes []string) []models.ExchangeRate {
	rates := make([]models.ExchangeRate, 0, len(codes))
	for _, code := range codes {
		entry := models.ExchangeRate{Currency: code}
		rate, err := p.fetchRate(ctx, code)
		if err != nil {
			p.logger.Warn("exchange rate lookup failed",
				zap.String("currency", code),
				zap.Error(err))
		} else {
			entry.Rate = &rate
		}
		rates = append(rates, entry)
	}
	return rates
}

func (p *HTTPRateProvider) fetchRate(ctx context.Context, code string) (float64, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, strings.ToUpper(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	// Decode generically to support both v6 (conversion_rates) and v4 (rates).
	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if r, ok := raw["result"].(string); ok && r != "success" {
		return 0, fmt.Errorf("API error: %s", r)
	}

	ratesMap, ok := raw["conversion_rates"].(map[string]interface{})
	if !ok {
		if ratesMap, ok = raw["rates"].(map[string]interface{}); !ok {
			return 0, fmt.Errorf("API response missing rates")
		}
	}

	value, ok := ratesMap[p.target].(float64)
	if !ok {
		return 0, fmt.Errorf("no %s rate for %s", p.target, code)
	}
	return value, nil
}
