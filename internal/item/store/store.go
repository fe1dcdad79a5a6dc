package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/costperday/costperday/internal/database"
	"github.com/costperday/costperday/internal/item"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Purchase dates are stored as RFC 3339 text so the pure Go driver
// round-trips them without any driver-specific time handling.
const timeLayout = time.RFC3339Nano

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectItemColumns = `id, name, price, purchase_date, created_at, updated_at`

func scanItem(s scanner) (*item.Item, error) {
	var it item.Item

	var purchaseDate string

	var createdAt int64

	var updatedAt sql.NullInt64

	if err := s.Scan(&it.ID, &it.Name, &it.Price, &purchaseDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(timeLayout, purchaseDate)
	if err != nil {
		return nil, fmt.Errorf("parsing purchase date: %w", err)
	}

	it.PurchaseDate = t
	it.CreatedAt = time.Unix(createdAt, 0).UTC()

	if updatedAt.Valid {
		u := time.Unix(updatedAt.Int64, 0).UTC()
		it.UpdatedAt = &u
	}

	return &it, nil
}

func (s *Store) CreateItem(ctx context.Context, it *item.Item) error {
	now := time.Now()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO items (name, price, purchase_date, created_at) VALUES (?, ?, ?, ?)",
		it.Name, it.Price, it.PurchaseDate.UTC().Format(timeLayout), now.Unix(),
	)
	if err != nil {
		return &database.StorageError{Op: "inserting item", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return &database.StorageError{Op: "reading inserted id", Err: err}
	}

	it.ID = id
	it.CreatedAt = now.UTC()

	return nil
}

func (s *Store) GetItem(ctx context.Context, id int64) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE id = ?`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, item.ErrNotFound
		}

		return nil, &database.StorageError{Op: "getting item", Err: err}
	}

	return it, nil
}

func (s *Store) ListItems(ctx context.Context) ([]*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &database.StorageError{Op: "listing items", Err: err}
	}
	defer rows.Close()

	var items []*item.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, &database.StorageError{Op: "scanning item", Err: err}
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, &database.StorageError{Op: "iterating items", Err: err}
	}

	return items, nil
}

// PutItem upserts the full record at it.ID. A missing id inserts a new row
// at that key instead of failing, which keeps the behavior of saving an
// edit for an item deleted in the meantime.
func (s *Store) PutItem(ctx context.Context, it *item.Item) error {
	query := `
		INSERT INTO items (id, name, price, purchase_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			price = excluded.price,
			purchase_date = excluded.purchase_date,
			updated_at = excluded.updated_at
	`

	now := time.Now()

	_, err := s.db.ExecContext(ctx, query,
		it.ID, it.Name, it.Price, it.PurchaseDate.UTC().Format(timeLayout), now.Unix(), now.Unix(),
	)
	if err != nil {
		return &database.StorageError{Op: "upserting item", Err: err}
	}

	u := now.UTC()
	it.UpdatedAt = &u

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return &database.StorageError{Op: "deleting item", Err: err}
	}

	return nil
}

func (s *Store) DeleteAllItems(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM items")
	if err != nil {
		return &database.StorageError{Op: "clearing items", Err: err}
	}

	return nil
}

// ReplaceAllItems clears the collection and inserts the given items with
// their original ids, all inside one transaction so a failure leaves the
// previous collection in place.
func (s *Store) ReplaceAllItems(ctx context.Context, items []*item.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &database.StorageError{Op: "beginning replace", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return &database.StorageError{Op: "clearing items", Err: err}
	}

	now := time.Now().Unix()

	for _, it := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO items (id, name, price, purchase_date, created_at) VALUES (?, ?, ?, ?, ?)",
			it.ID, it.Name, it.Price, it.PurchaseDate.UTC().Format(timeLayout), now,
		)
		if err != nil {
			return &database.StorageError{Op: "inserting replacement item", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &database.StorageError{Op: "committing replace", Err: err}
	}

	return nil
}
