package setting

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("setting key must not be empty")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=setting
type Repository interface {
	// GetSetting returns the stored value and whether the key exists.
	GetSetting(ctx context.Context, key string) (string, bool, error)
	ListSettings(ctx context.Context) (map[string]string, error)
	PutSetting(ctx context.Context, key, value string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored value, or the built-in default when the key has
// never been written. Unknown keys without a stored value yield "".
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	value, ok, err := s.repo.GetSetting(ctx, key)
	if err != nil {
		return "", err
	}

	if !ok {
		return Defaults()[key], nil
	}

	return value, nil
}

// All returns the stored settings merged over the defaults, so every
// recognized key is always present.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	stored, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, err
	}

	merged := Defaults()
	for k, v := range stored {
		merged[k] = v
	}

	return merged, nil
}

// Set upserts a single entry.
func (s *Service) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	return s.repo.PutSetting(ctx, key, value)
}

// Load builds the startup snapshot for the rendering layer.
func (s *Service) Load(ctx context.Context) (Settings, error) {
	all, err := s.All(ctx)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Language: all[KeyLanguage],
		Currency: all[KeyCurrency],
	}, nil
}
