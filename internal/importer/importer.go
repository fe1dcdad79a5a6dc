// Package importer parses and validates JSON archives produced by the
// export service (or by the original web app). Validation runs to
// completion before anything touches storage, so a rejected archive leaves
// the existing collection untouched.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/costperday/costperday/internal/encoding"
	"github.com/costperday/costperday/internal/item"
)

var (
	// ErrNotArray rejects archives whose top-level value is not a JSON array.
	ErrNotArray = errors.New("archive is not a JSON array")

	// ErrBadRecord rejects records missing a required field (id, name,
	// price, purchaseDate).
	ErrBadRecord = errors.New("archive record is missing required fields")

	// ErrDuplicateID rejects archives where two records share an id.
	ErrDuplicateID = errors.New("archive contains duplicate item ids")
)

type record struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Parse reads an archive and returns the items it holds, with their
// archived ids. All validation errors are classified; any error means no
// item was produced and nothing may be written.
func (s *Service) Parse(r io.Reader) ([]*item.Item, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}

	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("[")) {
		return nil, ErrNotArray
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing archive: %w", err)
	}

	seen := make(map[int64]struct{}, len(records))
	items := make([]*item.Item, 0, len(records))

	for i, rec := range records {
		if rec.ID == 0 || strings.TrimSpace(rec.Name) == "" || rec.Price == 0 || rec.PurchaseDate.IsZero() {
			return nil, fmt.Errorf("%w: record %d", ErrBadRecord, i)
		}

		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateID, rec.ID)
		}

		seen[rec.ID] = struct{}{}

		items = append(items, &item.Item{
			ID:           rec.ID,
			Name:         strings.TrimSpace(rec.Name),
			Price:        rec.Price,
			PurchaseDate: rec.PurchaseDate,
		})
	}

	return items, nil
}
