package models

// OrderSide selects which half of the order book a query targets.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// FeedKind identifies one of the three feed variants a detail view can
// poll. It replaces ad hoc tab-name branching with a closed set.
type FeedKind int

const (
	FeedBuyOrders FeedKind = iota
	FeedSellOrders
	FeedTrades
)

// Side returns the order book side for the book feeds. ok is false for the
// trade tape, which is not side-keyed.
func (f FeedKind) Side() (side OrderSide, ok bool) {
	switch f {
	case FeedBuyOrders:
		return SideBuy, true
	case FeedSellOrders:
		return SideSell, true
	default:
		return "", false
	}
}

func (f FeedKind) String() string {
	switch f {
	case FeedBuyOrders:
		return "buy_orders"
	case FeedSellOrders:
		return "sell_orders"
	case FeedTrades:
		return "trades"
	default:
		return "unknown"
	}
}

// Title returns the display heading for the feed.
func (f FeedKind) Title() string {
	switch f {
	case FeedBuyOrders:
		return "سفارش های خرید"
	case FeedSellOrders:
		return "سفارش های فروش"
	case FeedTrades:
		return "معاملات"
	default:
		return ""
	}
}
