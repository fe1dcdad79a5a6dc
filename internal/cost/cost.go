// Package cost holds the amortization arithmetic: a purchase price spread
// evenly over the days since purchase. Everything here is a pure function
// over its inputs.
package cost

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/costperday/costperday/internal/item"
)

const dayMillis = 24 * 60 * 60 * 1000

// ElapsedDays counts started days between the purchase date and now: the
// millisecond difference divided by one day, rounded up. The result is
// clamped to a minimum of 1 so a same-day purchase amortizes over one day
// and a slightly skewed clock never produces zero or negative days.
func ElapsedDays(purchaseDate, now time.Time) int64 {
	ms := now.Sub(purchaseDate).Milliseconds()

	days := ms / dayMillis
	if ms > days*dayMillis {
		days++
	}

	if days < 1 {
		days = 1
	}

	return days
}

// DailyCost returns price divided by the elapsed days. For a fixed price
// and purchase date it never increases as now advances.
func DailyCost(price float64, purchaseDate, now time.Time) float64 {
	return price / float64(ElapsedDays(purchaseDate, now))
}

// TotalDailyCost sums the daily cost of every item against the same now.
// Callers capture now once per aggregate so the per-item rates and the
// total are consistent with each other.
func TotalDailyCost(items []*item.Item, now time.Time) float64 {
	var total float64
	for _, it := range items {
		total += DailyCost(it.Price, it.PurchaseDate, now)
	}

	return total
}

// FormatCurrency renders a value with exactly two fractional digits,
// rounding half away from zero. No symbol, no grouping; callers prepend
// the configured currency symbol.
func FormatCurrency(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}
