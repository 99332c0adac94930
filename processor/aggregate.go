// Package processor holds the pure transforms between feed snapshots and
// the derived values a view renders: order book aggregation, pagination
// windowing and market filtering. Nothing in this package has side effects
// or retains state between calls.
package processor

import (
	"github.com/shopspring/decimal"

	"marketview/models"
	"marketview/numeric"
)

// Aggregate computes the volume-target totals for an order list. percent is
// the share of the total remaining volume to execute; values outside
// [0, 100] are clamped. An empty list yields all-zero totals.
//
// The input order is preserved as supplied by the source; Aggregate never
// reorders and handles any list length from zero upward.
func Aggregate(orders []models.OrderRecord, percent float64) models.AggregateTotals {
	percent = ClampPercent(percent)

	totalRemain := decimal.Zero
	totalValue := decimal.Zero
	weighted := decimal.Zero
	for _, order := range orders {
		totalRemain = totalRemain.Add(order.Remain)
		totalValue = totalValue.Add(order.Value)
		weighted = weighted.Add(order.Price.Mul(order.Remain))
	}

	avgPrice := numeric.SafeDiv(weighted, totalRemain)
	targetRemain := totalRemain.Mul(numeric.FromPercent(percent))
	totalPayment := targetRemain.Mul(avgPrice)

	return models.AggregateTotals{
		TotalRemain:      totalRemain,
		TotalValue:       totalValue,
		WeightedAvgPrice: avgPrice,
		TargetRemain:     targetRemain,
		TotalPayment:     totalPayment,
	}
}

// ClampPercent bounds a volume-target percentage to [0, 100]. The lower
// bound is enforced as well; negative input must never reach the
// calculator.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
