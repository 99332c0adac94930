package models

import (
	"encoding/json"
	"testing"
)

func TestOrderRecordDecodeNumericForms(t *testing.T) {
	// The feed mixes plain numbers and decimal strings for the same field.
	data := []byte(`{"price":"1234.56","remain":2.5,"value":"3086.4","time":"2024-01-01T00:00:00Z"}`)
	var r OrderRecord
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Price.String() != "1234.56" {
		t.Errorf("unexpected price: %s", r.Price)
	}
	if r.Remain.String() != "2.5" {
		t.Errorf("unexpected remain: %s", r.Remain)
	}
	if !r.MatchAmount.IsZero() {
		t.Errorf("missing match_amount should decode to zero, got %s", r.MatchAmount)
	}
}

func TestOrderRecordDisplayAmount(t *testing.T) {
	var r OrderRecord
	if err := json.Unmarshal([]byte(`{"remain":3,"match_amount":7}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := r.DisplayAmount(FeedTrades); got.String() != "7" {
		t.Errorf("trade tape should show match_amount, got %s", got)
	}
	if got := r.DisplayAmount(FeedBuyOrders); got.String() != "3" {
		t.Errorf("book feed should show remain, got %s", got)
	}
}

func TestMarketPageDecode(t *testing.T) {
	data := []byte(`{
		"count": 2,
		"results": [
			{"id": 5, "code": "BTC_IRT", "title": "Bitcoin", "title_fa": "بیت کوین",
			 "tradable": true,
			 "currency2": {"id": 2, "code": "IRT", "color": "ffffff", "image": "irt.png"},
			 "price_info": {"price": "4100000000", "change": -1.2}},
			{"id": 8, "code": "BTC_USDT", "title": "Bitcoin", "title_fa": "بیت کوین",
			 "tradable": false,
			 "currency2": {"id": 4, "code": "USDT", "color": "26a17b", "image": "usdt.png"},
			 "price_info": {"price": "64000", "change": 0.4}}
		]
	}`)
	var page MarketPage
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if page.Count != 2 || len(page.Results) != 2 {
		t.Fatalf("unexpected page shape: count=%d results=%d", page.Count, len(page.Results))
	}
	if page.Results[0].Currency2.Code != "IRT" || !page.Results[0].Tradable {
		t.Errorf("unexpected first market: %+v", page.Results[0])
	}
}

func TestFeedKindSide(t *testing.T) {
	cases := []struct {
		feed FeedKind
		side OrderSide
		ok   bool
	}{
		{FeedBuyOrders, SideBuy, true},
		{FeedSellOrders, SideSell, true},
		{FeedTrades, "", false},
	}
	for _, c := range cases {
		side, ok := c.feed.Side()
		if side != c.side || ok != c.ok {
			t.Errorf("%s.Side() = (%q, %v), want (%q, %v)", c.feed, side, ok, c.side, c.ok)
		}
	}
}
