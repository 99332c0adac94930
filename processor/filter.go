package processor

import "marketview/models"

// FilterByQuote keeps the markets quoted in the given currency that are
// currently tradable, preserving the input order.
func FilterByQuote(markets []models.MarketSummary, quoteCode string) []models.MarketSummary {
	filtered := make([]models.MarketSummary, 0, len(markets))
	for _, m := range markets {
		if m.Currency2.Code == quoteCode && m.Tradable {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
