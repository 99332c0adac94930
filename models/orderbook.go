package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRecord is one row of a buy-book, sell-book or trade-tape snapshot.
// The feed serves quantities as either JSON numbers or decimal strings;
// decimal.Decimal accepts both, and a missing field decodes to zero.
// Records are read-only values with no identity across polls.
type OrderRecord struct {
	Price       decimal.Decimal `json:"price"`
	Remain      decimal.Decimal `json:"remain"`
	Value       decimal.Decimal `json:"value"`
	Amount      decimal.Decimal `json:"amount"`
	MatchAmount decimal.Decimal `json:"match_amount"`
	Time        string          `json:"time"`
}

// DisplayAmount returns the quantity column shown for the given feed: the
// matched amount for the trade tape, the remaining volume otherwise.
func (r OrderRecord) DisplayAmount(feed FeedKind) decimal.Decimal {
	if feed == FeedTrades {
		return r.MatchAmount
	}
	return r.Remain
}

// BookResponse is the envelope returned by the order book endpoint. The
// trade tape endpoint returns a bare array instead.
type BookResponse struct {
	Orders []OrderRecord `json:"orders"`
}

// BookSnapshot is one fetched feed result, tagged with the key it was
// requested for and the fetch time.
type BookSnapshot struct {
	MarketID  int
	Feed      FeedKind
	Orders    []OrderRecord
	FetchedAt time.Time
}
