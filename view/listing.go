// Package view holds the presentation-facing state for the two pages: the
// paginated market listing and the per-market detail view. Each view owns
// value-semantics snapshots replaced wholesale on refresh; no entity is
// shared between concurrent consumers.
package view

import (
	"sync"

	"marketview/config"
	"marketview/models"
	"marketview/processor"
)

// ListingPage is the renderable state of the market listing: the visible
// slice for the active quote tab and its pagination controls.
type ListingPage struct {
	Quote   string
	Page    int
	Markets processor.PageWindow[models.MarketSummary]
	HasPrev bool
	HasNext bool
}

// ListingView paginates the filtered market list. It keeps a distinct page
// counter for every quote-currency tab so switching tabs preserves each
// tab's position.
type ListingView struct {
	mu           sync.Mutex
	markets      []models.MarketSummary
	activeQuote  string
	pages        map[string]int
	pageSize     int
	displayLimit int
}

// NewListingView creates a listing over the configured quote tabs, each
// starting at page one.
func NewListingView(cfg *config.Config) *ListingView {
	pages := make(map[string]int, len(cfg.Listing.Quotes))
	for _, quote := range cfg.Listing.Quotes {
		pages[quote] = 1
	}
	return &ListingView{
		activeQuote:  cfg.Listing.Quotes[0],
		pages:        pages,
		pageSize:     cfg.Listing.PageSize,
		displayLimit: cfg.Listing.PageDisplayLimit,
	}
}

// SetMarkets replaces the market list wholesale with a fresh snapshot.
func (v *ListingView) SetMarkets(page models.MarketPage) {
	v.mu.Lock()
	v.markets = page.Results
	v.mu.Unlock()
}

// SetQuote switches the active quote tab. The previous tab's page counter
// is preserved.
func (v *ListingView) SetQuote(code string) {
	v.mu.Lock()
	if _, ok := v.pages[code]; ok {
		v.activeQuote = code
	}
	v.mu.Unlock()
}

// Quote returns the active quote tab.
func (v *ListingView) Quote() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activeQuote
}

// SetPage moves the active tab to the given page when it is within bounds.
func (v *ListingView) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if page >= 1 && page <= v.totalPagesLocked() {
		v.pages[v.activeQuote] = page
	}
}

// NextPage advances the active tab one page; a no-op on the last page.
func (v *ListingView) NextPage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pages[v.activeQuote] < v.totalPagesLocked() {
		v.pages[v.activeQuote]++
	}
}

// PrevPage moves the active tab back one page; a no-op on the first page.
func (v *ListingView) PrevPage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pages[v.activeQuote] > 1 {
		v.pages[v.activeQuote]--
	}
}

// Page computes the renderable listing state for the active tab from the
// current snapshot.
func (v *ListingView) Page() ListingPage {
	v.mu.Lock()
	defer v.mu.Unlock()

	page := v.pages[v.activeQuote]
	filtered := processor.FilterByQuote(v.markets, v.activeQuote)
	window := processor.Window(filtered, page, v.pageSize, v.displayLimit)

	return ListingPage{
		Quote:   v.activeQuote,
		Page:    page,
		Markets: window,
		HasPrev: page > 1,
		HasNext: page < window.TotalPages,
	}
}

func (v *ListingView) totalPagesLocked() int {
	filtered := processor.FilterByQuote(v.markets, v.activeQuote)
	return processor.Window(filtered, 1, v.pageSize, v.displayLimit).TotalPages
}
