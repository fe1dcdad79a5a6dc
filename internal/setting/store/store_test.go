package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costperday/costperday/internal/database"
	"github.com/costperday/costperday/internal/setting"
	"github.com/costperday/costperday/internal/setting/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db)
}

func TestStore_FreshDatabaseSeeded(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	lang, ok, err := s.GetSetting(ctx, setting.KeyLanguage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", lang)

	currency, ok, err := s.GetSetting(ctx, setting.KeyCurrency)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "$", currency)
}

func TestStore_Get_Missing(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.GetSetting(context.Background(), "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Put_Upserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutSetting(ctx, setting.KeyCurrency, "€"))
	require.NoError(t, s.PutSetting(ctx, setting.KeyCurrency, "¥"))

	got, ok, err := s.GetSetting(ctx, setting.KeyCurrency)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "¥", got)
}

func TestStore_List(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutSetting(ctx, setting.KeyLanguage, "zh"))

	all, err := s.ListSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "zh", all[setting.KeyLanguage])
	assert.Equal(t, "$", all[setting.KeyCurrency])
}
