package cost_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/costperday/costperday/internal/cost"
	"github.com/costperday/costperday/internal/item"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestElapsedDays(t *testing.T) {
	now := date(2024, 3, 15)

	tests := []struct {
		name     string
		purchase time.Time
		want     int64
	}{
		{"SameInstant", now, 1},
		{"PartialDay", now.Add(-6 * time.Hour), 1},
		{"ExactlyOneDay", now.AddDate(0, 0, -1), 1},
		{"OneDayAndABit", now.Add(-25 * time.Hour), 2},
		{"ThirtyDays", now.AddDate(0, 0, -30), 30},
		{"FutureClockSkew", now.Add(2 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cost.ElapsedDays(tt.purchase, now))
		})
	}
}

func TestDailyCost_SameDayFloor(t *testing.T) {
	now := date(2024, 3, 15)

	assert.Equal(t, 100.0, cost.DailyCost(100, now, now))
}

func TestDailyCost_NeverIncreases(t *testing.T) {
	purchase := date(2024, 1, 1)
	price := 365.0

	// Walk now forward in uneven steps; the rate must never go up.
	now := purchase.Add(3 * time.Hour)
	prev := cost.DailyCost(price, purchase, now)

	steps := []time.Duration{
		30 * time.Minute,
		6 * time.Hour,
		24 * time.Hour,
		36 * time.Hour,
		240 * time.Hour,
	}

	for _, step := range steps {
		now = now.Add(step)

		got := cost.DailyCost(price, purchase, now)
		assert.LessOrEqual(t, got, prev, "rate increased at now=%s", now)

		prev = got
	}
}

func TestTotalDailyCost(t *testing.T) {
	now := date(2024, 3, 15)

	assert.Zero(t, cost.TotalDailyCost(nil, now))
	assert.Zero(t, cost.TotalDailyCost([]*item.Item{}, now))

	a := &item.Item{Price: 90, PurchaseDate: now.AddDate(0, 0, -30)}
	b := &item.Item{Price: 10, PurchaseDate: now}

	total := cost.TotalDailyCost([]*item.Item{a, b}, now)
	assert.InDelta(t, cost.DailyCost(a.Price, a.PurchaseDate, now)+cost.DailyCost(b.Price, b.PurchaseDate, now), total, 1e-9)
}

func TestCoffeeMakerScenario(t *testing.T) {
	now := date(2024, 3, 15)

	coffeeMaker := &item.Item{Name: "Coffee Maker", Price: 90, PurchaseDate: now.AddDate(0, 0, -30)}
	assert.Equal(t, 3.0, cost.DailyCost(coffeeMaker.Price, coffeeMaker.PurchaseDate, now))

	filters := &item.Item{Price: 10, PurchaseDate: now}
	assert.Equal(t, 10.0, cost.DailyCost(filters.Price, filters.PurchaseDate, now))

	total := cost.TotalDailyCost([]*item.Item{coffeeMaker, filters}, now)
	assert.Equal(t, "13.00", cost.FormatCurrency(total))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0.00"},
		{3, "3.00"},
		{10.5, "10.50"},
		{199.99, "199.99"},
		{1234.567, "1234.57"},
		{0.005, "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, cost.FormatCurrency(tt.value))
		})
	}
}
