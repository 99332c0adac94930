package processor

import (
	"testing"

	"github.com/shopspring/decimal"

	"marketview/models"
)

func order(price, remain, value string) models.OrderRecord {
	return models.OrderRecord{
		Price:  decimal.RequireFromString(price),
		Remain: decimal.RequireFromString(remain),
		Value:  decimal.RequireFromString(value),
	}
}

func TestAggregateTwoLevelBook(t *testing.T) {
	orders := []models.OrderRecord{
		order("100", "2", "200"),
		order("200", "1", "200"),
	}

	totals := Aggregate(orders, 50)
	display := totals.Fixed()

	if totals.TotalRemain.String() != "3" {
		t.Errorf("total remain = %s, want 3", totals.TotalRemain)
	}
	if totals.TotalValue.String() != "400" {
		t.Errorf("total value = %s, want 400", totals.TotalValue)
	}
	if display.WeightedAvgPrice != "133.3333" {
		t.Errorf("weighted avg price = %s, want 133.3333", display.WeightedAvgPrice)
	}
	if display.TargetRemain != "1.5000" {
		t.Errorf("target remain = %s, want 1.5000", display.TargetRemain)
	}
	if display.TotalPayment != "200.0000" {
		t.Errorf("total payment = %s, want 200.0000", display.TotalPayment)
	}
}

func TestAggregateEmptyBook(t *testing.T) {
	totals := Aggregate(nil, 75)
	if !totals.TotalRemain.IsZero() || !totals.TotalValue.IsZero() ||
		!totals.WeightedAvgPrice.IsZero() || !totals.TargetRemain.IsZero() ||
		!totals.TotalPayment.IsZero() {
		t.Fatalf("empty book should yield zero totals, got %+v", totals)
	}
}

func TestAggregatePercentBounds(t *testing.T) {
	orders := []models.OrderRecord{
		order("50", "4", "200"),
		order("55", "6", "330"),
	}

	if got := Aggregate(orders, 0).TargetRemain; !got.IsZero() {
		t.Errorf("percent 0 target remain = %s, want 0", got)
	}

	full := Aggregate(orders, 100)
	if !full.TargetRemain.Equal(full.TotalRemain) {
		t.Errorf("percent 100 target remain = %s, want %s", full.TargetRemain, full.TotalRemain)
	}

	// Out-of-range input clamps instead of propagating an error.
	if got := Aggregate(orders, -20).TargetRemain; !got.IsZero() {
		t.Errorf("negative percent target remain = %s, want 0", got)
	}
	over := Aggregate(orders, 250)
	if !over.TargetRemain.Equal(over.TotalRemain) {
		t.Errorf("percent 250 target remain = %s, want %s", over.TargetRemain, over.TotalRemain)
	}
}

func TestAggregateWeightedAvgWithinPriceRange(t *testing.T) {
	cases := [][]models.OrderRecord{
		{order("100", "1", "100")},
		{order("100", "2", "200"), order("200", "1", "200")},
		{order("0.1", "1000", "100"), order("0.3", "500", "150"), order("0.2", "250", "50")},
	}
	for i, orders := range cases {
		totals := Aggregate(orders, 50)
		min := orders[0].Price
		max := orders[0].Price
		for _, o := range orders[1:] {
			if o.Price.LessThan(min) {
				min = o.Price
			}
			if o.Price.GreaterThan(max) {
				max = o.Price
			}
		}
		if totals.WeightedAvgPrice.LessThan(min) || totals.WeightedAvgPrice.GreaterThan(max) {
			t.Errorf("case %d: weighted avg %s outside [%s, %s]", i, totals.WeightedAvgPrice, min, max)
		}
	}
}

func TestAggregateDoesNotReorderInput(t *testing.T) {
	orders := []models.OrderRecord{
		order("200", "1", "200"),
		order("100", "2", "200"),
	}
	Aggregate(orders, 50)
	if orders[0].Price.String() != "200" || orders[1].Price.String() != "100" {
		t.Fatalf("input mutated: %+v", orders)
	}
}

func TestClampPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{37.5, 37.5},
		{100, 100},
		{140, 100},
	}
	for _, c := range cases {
		if got := ClampPercent(c.in); got != c.want {
			t.Errorf("ClampPercent(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
