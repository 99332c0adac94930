package models

// QuoteCurrency describes the currency a market's price is denominated in.
type QuoteCurrency struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Color string `json:"color"`
	Image string `json:"image"`
}

// PriceInfo carries the current price and 24h percent change for a market.
// The feed serves the price as a decimal string.
type PriceInfo struct {
	Price  string  `json:"price"`
	Change float64 `json:"change"`
}

// MarketSummary is one row of the market list snapshot. It is an immutable
// value; every poll replaces the whole list instead of mutating rows.
type MarketSummary struct {
	ID        int           `json:"id"`
	Code      string        `json:"code"`
	Title     string        `json:"title"`
	TitleFa   string        `json:"title_fa"`
	Tradable  bool          `json:"tradable"`
	Currency2 QuoteCurrency `json:"currency2"`
	PriceInfo PriceInfo     `json:"price_info"`
}

// MarketPage is the envelope returned by the market list endpoint.
type MarketPage struct {
	Count   int             `json:"count"`
	Results []MarketSummary `json:"results"`
}
