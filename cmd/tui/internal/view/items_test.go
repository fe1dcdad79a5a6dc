package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemForm_TodayIsNotFuture(t *testing.T) {
	today := time.Now().Format(time.DateOnly)

	params, err := parseItemForm("Kettle", "45", today)
	require.NoError(t, err)

	// The date is local midnight, so today's date never lies in the
	// future regardless of the machine's timezone.
	assert.Equal(t, time.Local, params.PurchaseDate.Location())
	assert.False(t, params.PurchaseDate.After(time.Now()))
}

func TestParseItemForm_BadPrice(t *testing.T) {
	_, err := parseItemForm("Kettle", "cheap", "2024-01-15")
	assert.Error(t, err)
}
