package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costperday/costperday/internal/database"
	"github.com/costperday/costperday/internal/item"
	"github.com/costperday/costperday/internal/item/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db)
}

func TestStore_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	it := &item.Item{
		Name:         "Coffee Maker",
		Price:        9000,
		PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateItem(ctx, it))
	assert.NotZero(t, it.ID)
	assert.False(t, it.CreatedAt.IsZero())

	got, err := s.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Maker", got.Name)
	assert.Equal(t, 9000.0, got.Price)
	assert.True(t, got.PurchaseDate.Equal(it.PurchaseDate))
	assert.Nil(t, got.UpdatedAt)
}

func TestStore_Get_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetItem(context.Background(), 999)
	assert.ErrorIs(t, err, item.ErrNotFound)
}

func TestStore_Put_UpdatesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	it := &item.Item{
		Name:         "Kettle",
		Price:        45,
		PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateItem(ctx, it))

	it.Name = "Electric Kettle"
	it.Price = 60
	require.NoError(t, s.PutItem(ctx, it))

	got, err := s.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electric Kettle", got.Name)
	assert.Equal(t, 60.0, got.Price)
	assert.NotNil(t, got.UpdatedAt)
}

func TestStore_Put_MissingIDInserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Saving a record at an id that was never created (or was deleted)
	// writes it at that key rather than failing.
	it := &item.Item{
		ID:           42,
		Name:         "Resurrected",
		Price:        10,
		PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.PutItem(ctx, it))

	got, err := s.GetItem(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Resurrected", got.Name)
}

func TestStore_Delete_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	it := &item.Item{
		Name:         "Kettle",
		Price:        45,
		PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateItem(ctx, it))

	require.NoError(t, s.DeleteItem(ctx, it.ID))

	_, err := s.GetItem(ctx, it.ID)
	assert.ErrorIs(t, err, item.ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, s.DeleteItem(ctx, it.ID))
}

func TestStore_IDsNeverReused(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &item.Item{
		Name:         "First",
		Price:        10,
		PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateItem(ctx, first))
	require.NoError(t, s.DeleteItem(ctx, first.ID))

	second := &item.Item{
		Name:         "Second",
		Price:        20,
		PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateItem(ctx, second))

	assert.Greater(t, second.ID, first.ID)
}

func TestStore_DeleteAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"One", "Two", "Three"} {
		it := &item.Item{
			Name:         name,
			Price:        10,
			PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, s.CreateItem(ctx, it))
	}

	require.NoError(t, s.DeleteAllItems(ctx))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_ReplaceAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	existing := &item.Item{
		Name:         "Old",
		Price:        10,
		PurchaseDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateItem(ctx, existing))

	replacement := []*item.Item{
		{ID: 7, Name: "Coffee Maker", Price: 9000, PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 12, Name: "Kettle", Price: 45, PurchaseDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, s.ReplaceAllItems(ctx, replacement))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	got, err := s.GetItem(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Maker", got.Name)

	_, err = s.GetItem(ctx, existing.ID)
	assert.ErrorIs(t, err, item.ErrNotFound)
}
