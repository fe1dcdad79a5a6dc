package item

import (
	"context"
	"math"
	"strings"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=item
type Repository interface {
	CreateItem(ctx context.Context, it *Item) error
	GetItem(ctx context.Context, id int64) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)

	// PutItem stores the full record at it.ID, inserting when the id is
	// absent and replacing when it is present.
	PutItem(ctx context.Context, it *Item) error

	DeleteItem(ctx context.Context, id int64) error
	DeleteAllItems(ctx context.Context) error

	// ReplaceAllItems clears the collection and inserts the given items,
	// keeping their ids, inside a single database transaction.
	ReplaceAllItems(ctx context.Context, items []*Item) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	Price        float64
	PurchaseDate time.Time
}

func (p CreateParams) validate(now time.Time) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	// NaN and infinities slip past a plain <= 0 check and would blow up
	// every later cost computation.
	if p.Price <= 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return ErrInvalidPrice
	}

	if p.PurchaseDate.After(now) {
		return ErrFutureDate
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	if err := params.validate(time.Now()); err != nil {
		return nil, err
	}

	it := &Item{
		Name:         strings.TrimSpace(params.Name),
		Price:        params.Price,
		PurchaseDate: params.PurchaseDate,
	}
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Item, error) {
	return s.repo.ListItems(ctx)
}

// Update replaces the full record stored at id. A missing id is not an
// error: the record is created at that key instead, so saving an edit of an
// item deleted in the meantime silently resurrects it. Callers that want to
// refuse stale edits check Get first.
func (s *Service) Update(ctx context.Context, id int64, params CreateParams) (*Item, error) {
	if err := params.validate(time.Now()); err != nil {
		return nil, err
	}

	it := &Item{
		ID:           id,
		Name:         strings.TrimSpace(params.Name),
		Price:        params.Price,
		PurchaseDate: params.PurchaseDate,
	}
	if err := s.repo.PutItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

// Delete removes the item. Deleting an id that does not exist is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *Service) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAllItems(ctx)
}

// ReplaceAll wipes the collection and inserts items with their archived
// ids. Callers validate the batch (see the importer) before calling; the
// replace itself is all-or-nothing.
func (s *Service) ReplaceAll(ctx context.Context, items []*Item) error {
	return s.repo.ReplaceAllItems(ctx, items)
}
