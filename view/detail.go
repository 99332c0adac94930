package view

import (
	"sync"

	"marketview/models"
	"marketview/processor"
)

// DetailView holds the state of one market's detail page: the active feed
// tab, the clamped volume-target percent and the latest feed snapshot.
// Totals are derived on demand, never cached.
type DetailView struct {
	mu       sync.Mutex
	marketID int
	feed     models.FeedKind
	percent  float64
	orders   []models.OrderRecord
}

// NewDetailView creates a detail view for the market, starting on the buy
// orders tab.
func NewDetailView(marketID int) *DetailView {
	return &DetailView{
		marketID: marketID,
		feed:     models.FeedBuyOrders,
	}
}

// MarketID returns the market this view tracks.
func (v *DetailView) MarketID() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.marketID
}

// Feed returns the active feed tab.
func (v *DetailView) Feed() models.FeedKind {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.feed
}

// SetFeed switches the active tab. The previous rows stay visible until
// the next snapshot for the new feed arrives.
func (v *DetailView) SetFeed(feed models.FeedKind) {
	v.mu.Lock()
	v.feed = feed
	v.mu.Unlock()
}

// SetPercent stores the volume-target percent, clamped to [0, 100] at this
// boundary so out-of-range keystrokes never reach the calculator.
func (v *DetailView) SetPercent(percent float64) {
	v.mu.Lock()
	v.percent = processor.ClampPercent(percent)
	v.mu.Unlock()
}

// Percent returns the clamped volume-target percent.
func (v *DetailView) Percent() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.percent
}

// Apply installs a feed snapshot, replacing the previous rows wholesale.
// Snapshots for another market or a tab that is no longer active are
// ignored; the scheduler's staleness gate makes this a second line of
// defense.
func (v *DetailView) Apply(snap models.BookSnapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if snap.MarketID != v.marketID || snap.Feed != v.feed {
		return
	}
	v.orders = snap.Orders
}

// Orders returns the current rows.
func (v *DetailView) Orders() []models.OrderRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.OrderRecord(nil), v.orders...)
}

// Totals recomputes the volume-target aggregate from the current rows and
// percent.
func (v *DetailView) Totals() models.AggregateTotals {
	v.mu.Lock()
	orders := v.orders
	percent := v.percent
	v.mu.Unlock()
	return processor.Aggregate(orders, percent)
}
