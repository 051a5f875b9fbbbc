package models

// Report is the dashboard document. Field names and order are part of the
// contract with the frontend and must not change.
type Report struct {
	Greeting        string           `json:"greeting"`
	Cards           []CardSummary    `json:"cards"`
	TopTransactions []TopTransaction `json:"top_transactions"`
	ExchangeRates   []ExchangeRate   `json:"exchange_rates"`
	Stocks          []StockQuote     `json:"stocks"`
}

// CardSummary is the per-card spend/cashback aggregate. Amounts are rounded
// to two decimals before they reach this struct.
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// TopTransaction is one entry of the top-by-amount list. Date carries the
// operation date only, without time of day.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// TransferEntry is one result of the person-to-person transfer search. Date
// keeps the full operation timestamp; Amount is null when the row carried no
// operation amount.
type TransferEntry struct {
	Date        string   `json:"date"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

// ExchangeRate is the quote for one user currency. A nil Rate means the
// lookup failed for this currency; it serializes as null.
type ExchangeRate struct {
	Currency string   `json:"currency"`
	Rate     *float64 `json:"rate"`
}

// StockQuote is the price for one user stock, with the same nil-on-failure
// convention as ExchangeRate.
type StockQuote struct {
	Stock string   `json:"stock"`
	Price *float64 `json:"price"`
}
