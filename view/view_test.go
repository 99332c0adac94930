package view

import (
	"testing"

	"github.com/shopspring/decimal"

	"marketview/config"
	"marketview/models"
)

func listingConfig() *config.Config {
	return &config.Config{
		Listing: config.ListingConfig{
			PageSize:         12,
			PageDisplayLimit: 5,
			Quotes:           []string{"IRT", "USDT"},
		},
	}
}

func marketsFor(quote string, n int) []models.MarketSummary {
	markets := make([]models.MarketSummary, n)
	for i := range markets {
		markets[i] = models.MarketSummary{
			ID:        i + 1,
			Tradable:  true,
			Currency2: models.QuoteCurrency{Code: quote},
		}
	}
	return markets
}

func TestListingViewPerTabPageState(t *testing.T) {
	v := NewListingView(listingConfig())
	v.SetMarkets(models.MarketPage{
		Results: append(marketsFor("IRT", 37), marketsFor("USDT", 20)...),
	})

	v.SetPage(3)
	if got := v.Page(); got.Page != 3 || got.Quote != "IRT" {
		t.Fatalf("IRT page = %+v", got)
	}

	// Switching tabs lands on the other tab's own counter.
	v.SetQuote("USDT")
	if got := v.Page(); got.Page != 1 {
		t.Fatalf("USDT should start on page 1, got %d", got.Page)
	}

	// Switching back preserves the IRT position.
	v.SetQuote("IRT")
	if got := v.Page(); got.Page != 3 {
		t.Fatalf("IRT position lost: page %d", got.Page)
	}
}

func TestListingViewWindowScenario(t *testing.T) {
	v := NewListingView(listingConfig())
	v.SetMarkets(models.MarketPage{Results: marketsFor("IRT", 37)})
	v.SetPage(3)

	page := v.Page()
	if page.Markets.TotalPages != 4 {
		t.Fatalf("total pages = %d, want 4", page.Markets.TotalPages)
	}
	if len(page.Markets.Visible) != 12 || page.Markets.Visible[0].ID != 25 {
		t.Errorf("visible = %d markets starting at %d", len(page.Markets.Visible), page.Markets.Visible[0].ID)
	}
	if !page.HasPrev || !page.HasNext {
		t.Errorf("page 3 of 4 should have both affordances: %+v", page)
	}
}

func TestListingViewAffordancesAtBounds(t *testing.T) {
	v := NewListingView(listingConfig())
	v.SetMarkets(models.MarketPage{Results: marketsFor("IRT", 37)})

	v.PrevPage() // no-op on page 1
	if got := v.Page(); got.Page != 1 || got.HasPrev {
		t.Fatalf("prev on first page: %+v", got)
	}

	v.SetPage(4)
	v.NextPage() // no-op on last page
	if got := v.Page(); got.Page != 4 || got.HasNext {
		t.Fatalf("next on last page: %+v", got)
	}

	v.SetPage(99) // out of bounds, ignored
	if got := v.Page(); got.Page != 4 {
		t.Fatalf("out-of-bounds SetPage applied: %d", got.Page)
	}
}

func snapshot(marketID int, feed models.FeedKind, price, remain, value int64) models.BookSnapshot {
	return models.BookSnapshot{
		MarketID: marketID,
		Feed:     feed,
		Orders: []models.OrderRecord{{
			Price:  decimal.NewFromInt(price),
			Remain: decimal.NewFromInt(remain),
			Value:  decimal.NewFromInt(value),
		}},
	}
}

func TestDetailViewPercentClampBothBounds(t *testing.T) {
	v := NewDetailView(5)

	v.SetPercent(250)
	if got := v.Percent(); got != 100 {
		t.Errorf("percent 250 clamped to %v, want 100", got)
	}

	v.SetPercent(-10)
	if got := v.Percent(); got != 0 {
		t.Errorf("percent -10 clamped to %v, want 0", got)
	}
}

func TestDetailViewApplyAndTotals(t *testing.T) {
	v := NewDetailView(5)
	v.SetPercent(50)
	v.Apply(models.BookSnapshot{
		MarketID: 5,
		Feed:     models.FeedBuyOrders,
		Orders: []models.OrderRecord{
			{Price: decimal.NewFromInt(100), Remain: decimal.NewFromInt(2), Value: decimal.NewFromInt(200)},
			{Price: decimal.NewFromInt(200), Remain: decimal.NewFromInt(1), Value: decimal.NewFromInt(200)},
		},
	})

	display := v.Totals().Fixed()
	if display.WeightedAvgPrice != "133.3333" || display.TotalPayment != "200.0000" {
		t.Fatalf("unexpected totals: %+v", display)
	}
}

func TestDetailViewIgnoresMismatchedSnapshots(t *testing.T) {
	v := NewDetailView(5)
	v.Apply(snapshot(5, models.FeedBuyOrders, 100, 1, 100))

	// Snapshot for a tab that is no longer active.
	v.SetFeed(models.FeedSellOrders)
	v.Apply(snapshot(5, models.FeedBuyOrders, 999, 9, 999))
	// Snapshot for another market.
	v.Apply(snapshot(6, models.FeedSellOrders, 888, 8, 888))

	orders := v.Orders()
	if len(orders) != 1 || orders[0].Price.String() != "100" {
		t.Fatalf("mismatched snapshot applied: %+v", orders)
	}
}

func TestDetailViewEmptyBookTotals(t *testing.T) {
	v := NewDetailView(5)
	v.SetPercent(80)
	totals := v.Totals()
	if !totals.WeightedAvgPrice.IsZero() || !totals.TotalPayment.IsZero() {
		t.Fatalf("empty book totals should be zero: %+v", totals)
	}
}
