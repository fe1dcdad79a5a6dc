package importer_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/costperday/costperday/internal/database"
	"github.com/costperday/costperday/internal/importer"
	"github.com/costperday/costperday/internal/item"
	"github.com/costperday/costperday/internal/item/store"
)

const validArchive = `[
  { "id": 1, "name": "Headphones", "price": 199.99, "purchaseDate": "2024-01-15T00:00:00.000Z" },
  { "id": 2, "name": "Kettle", "price": 35, "purchaseDate": "2023-11-02T00:00:00Z" }
]`

func TestParse_ValidArchive(t *testing.T) {
	svc := importer.NewService()

	items, err := svc.Parse(strings.NewReader(validArchive))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "Headphones", items[0].Name)
	assert.Equal(t, 199.99, items[0].Price)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), items[0].PurchaseDate.UTC())

	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, 35.0, items[1].Price)
}

func TestParse_EmptyArray(t *testing.T) {
	svc := importer.NewService()

	items, err := svc.Parse(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParse_UTF16Archive(t *testing.T) {
	// Archives saved by some editors arrive as UTF-16 with a BOM; the
	// tolerant reader must still decode them.
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	encoded, err := enc.Bytes([]byte(validArchive))
	require.NoError(t, err)

	svc := importer.NewService()

	items, err := svc.Parse(strings.NewReader(string(encoded)))
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "NotAnArray",
			input:   `{"id": 1, "name": "Headphones"}`,
			wantErr: importer.ErrNotArray,
		},
		{
			name:    "Null",
			input:   `null`,
			wantErr: importer.ErrNotArray,
		},
		{
			name:    "MissingID",
			input:   `[{ "name": "Headphones", "price": 199.99, "purchaseDate": "2024-01-15T00:00:00Z" }]`,
			wantErr: importer.ErrBadRecord,
		},
		{
			name:    "MissingName",
			input:   `[{ "id": 1, "price": 199.99, "purchaseDate": "2024-01-15T00:00:00Z" }]`,
			wantErr: importer.ErrBadRecord,
		},
		{
			name:    "BlankName",
			input:   `[{ "id": 1, "name": "   ", "price": 199.99, "purchaseDate": "2024-01-15T00:00:00Z" }]`,
			wantErr: importer.ErrBadRecord,
		},
		{
			name:    "ZeroPrice",
			input:   `[{ "id": 1, "name": "Headphones", "price": 0, "purchaseDate": "2024-01-15T00:00:00Z" }]`,
			wantErr: importer.ErrBadRecord,
		},
		{
			name:    "MissingDate",
			input:   `[{ "id": 1, "name": "Headphones", "price": 199.99 }]`,
			wantErr: importer.ErrBadRecord,
		},
		{
			name: "DuplicateIDs",
			input: `[
				{ "id": 1, "name": "Headphones", "price": 199.99, "purchaseDate": "2024-01-15T00:00:00Z" },
				{ "id": 1, "name": "Kettle", "price": 35, "purchaseDate": "2023-11-02T00:00:00Z" }
			]`,
			wantErr: importer.ErrDuplicateID,
		},
	}

	svc := importer.NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, items)
		})
	}
}

func TestParse_BadJSON(t *testing.T) {
	svc := importer.NewService()

	_, err := svc.Parse(strings.NewReader(`[{"id": 1,`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, importer.ErrNotArray)
}

// A rejected archive must leave the stored collection exactly as it was:
// validation runs to completion before ReplaceAll is ever called.
func TestParse_RejectedArchiveLeavesStoreUntouched(t *testing.T) {
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	itemSvc := item.NewService(store.New(db))
	ctx := context.Background()

	seeded, err := itemSvc.Create(ctx, item.CreateParams{
		Name:         "Coffee Maker",
		Price:        9000,
		PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	duplicateIDs := `[
	  { "id": 7, "name": "One", "price": 10, "purchaseDate": "2024-01-15T00:00:00.000Z" },
	  { "id": 7, "name": "Two", "price": 20, "purchaseDate": "2024-01-16T00:00:00.000Z" }
	]`

	parsed, err := importer.NewService().Parse(strings.NewReader(duplicateIDs))
	require.Error(t, err)
	assert.ErrorIs(t, err, importer.ErrDuplicateID)
	assert.Nil(t, parsed)

	// The caller only replaces on a successful parse, so the collection
	// still holds the seeded row.
	items, err := itemSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, seeded.ID, items[0].ID)
	assert.Equal(t, "Coffee Maker", items[0].Name)
}
