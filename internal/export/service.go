// Package export renders the item collection as a JSON archive compatible
// with the web app's export files.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/costperday/costperday/internal/item"
)

// ErrNoData is returned when there is nothing to export.
var ErrNoData = errors.New("no items to export")

// Archive timestamps carry millisecond precision, matching the files the
// web app produced ("2024-01-15T00:00:00.000Z").
const dateFormat = "2006-01-02T15:04:05.000Z07:00"

type record struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PurchaseDate string  `json:"purchaseDate"`
}

type Service struct {
	items *item.Service
}

func NewService(items *item.Service) *Service {
	return &Service{items: items}
}

// Filename returns the suggested archive name for the given day, e.g.
// "cost-per-day-export-2024-01-15.json".
func Filename(now time.Time) string {
	return fmt.Sprintf("cost-per-day-export-%s.json", now.Format(time.DateOnly))
}

// Write streams the full collection as a JSON array. Returns the number of
// records written, or ErrNoData when the collection is empty.
func (s *Service) Write(ctx context.Context, w io.Writer) (int, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing items: %w", err)
	}

	if len(items) == 0 {
		return 0, ErrNoData
	}

	records := make([]record, len(items))
	for i, it := range items {
		records[i] = record{
			ID:           it.ID,
			Name:         it.Name,
			Price:        it.Price,
			PurchaseDate: it.PurchaseDate.UTC().Format(dateFormat),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		return 0, fmt.Errorf("encoding archive: %w", err)
	}

	return len(records), nil
}

// SaveTo writes the archive into dir (created if needed) under the
// suggested filename and returns the full path and record count.
func (s *Service) SaveTo(ctx context.Context, dir string, now time.Time) (string, int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, Filename(now))

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("creating archive file: %w", err)
	}
	defer f.Close()

	count, err := s.Write(ctx, f)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}

	return path, count, nil
}
