package view

import (
	"context"
	"time"

	"github.com/costperday/costperday/internal/cost"
)

const dbTimeout = 5 * time.Second

// FormatPrice renders an amount with the configured currency symbol.
func FormatPrice(symbol string, value float64) string {
	return symbol + cost.FormatCurrency(value)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
