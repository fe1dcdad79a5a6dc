package store

import (
	"context"
	"database/sql"

	"github.com/costperday/costperday/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}

	if err != nil {
		return "", false, &database.StorageError{Op: "getting setting", Err: err}
	}

	return value, true, nil
}

func (s *Store) ListSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, &database.StorageError{Op: "listing settings", Err: err}
	}
	defer rows.Close()

	settings := make(map[string]string)

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, &database.StorageError{Op: "scanning setting", Err: err}
		}

		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, &database.StorageError{Op: "iterating settings", Err: err}
	}

	return settings, nil
}

func (s *Store) PutSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return &database.StorageError{Op: "upserting setting", Err: err}
	}

	return nil
}
