package models

import (
	"github.com/shopspring/decimal"

	"marketview/numeric"
)

// AggregateTotals is the derived result of the volume-target calculator.
// It is recomputed from the current order list and percent on every change
// and never cached across polls.
type AggregateTotals struct {
	TotalRemain      decimal.Decimal
	TotalValue       decimal.Decimal
	WeightedAvgPrice decimal.Decimal
	TargetRemain     decimal.Decimal
	TotalPayment     decimal.Decimal
}

// AggregateDisplay carries the totals formatted with four decimal places.
type AggregateDisplay struct {
	TotalRemain      string
	TotalValue       string
	WeightedAvgPrice string
	TargetRemain     string
	TotalPayment     string
}

// Fixed projects the totals into display strings. Rounding happens here
// only, not in the intermediate arithmetic.
func (t AggregateTotals) Fixed() AggregateDisplay {
	return AggregateDisplay{
		TotalRemain:      numeric.Fixed(t.TotalRemain),
		TotalValue:       numeric.Fixed(t.TotalValue),
		WeightedAvgPrice: numeric.Fixed(t.WeightedAvgPrice),
		TargetRemain:     numeric.Fixed(t.TargetRemain),
		TotalPayment:     numeric.Fixed(t.TotalPayment),
	}
}
