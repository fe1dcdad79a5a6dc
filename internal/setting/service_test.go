package setting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/costperday/costperday/internal/setting"
)

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		key       string
		setupMock func(m *setting.MockRepository)
		want      string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Stored",
			key:  setting.KeyCurrency,
			setupMock: func(m *setting.MockRepository) {
				m.EXPECT().
					GetSetting(gomock.Any(), setting.KeyCurrency).
					Return("€", true, nil)
			},
			want: "€",
		},
		{
			name: "DefaultWhenMissing",
			key:  setting.KeyCurrency,
			setupMock: func(m *setting.MockRepository) {
				m.EXPECT().
					GetSetting(gomock.Any(), setting.KeyCurrency).
					Return("", false, nil)
			},
			want: "$",
		},
		{
			name: "UnknownKeyMissing",
			key:  "theme",
			setupMock: func(m *setting.MockRepository) {
				m.EXPECT().
					GetSetting(gomock.Any(), "theme").
					Return("", false, nil)
			},
			want: "",
		},
		{
			name: "RepoError",
			key:  setting.KeyLanguage,
			setupMock: func(m *setting.MockRepository) {
				m.EXPECT().
					GetSetting(gomock.Any(), setting.KeyLanguage).
					Return("", false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := setting.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := setting.NewService(repo)
			got, err := svc.Get(context.Background(), tt.key)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_All_MergesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := setting.NewMockRepository(ctrl)
	repo.EXPECT().
		ListSettings(gomock.Any()).
		Return(map[string]string{setting.KeyLanguage: "fr"}, nil)

	svc := setting.NewService(repo)
	all, err := svc.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fr", all[setting.KeyLanguage])
	assert.Equal(t, "$", all[setting.KeyCurrency])
}

func TestService_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := setting.NewMockRepository(ctrl)
	repo.EXPECT().PutSetting(gomock.Any(), setting.KeyCurrency, "¥").Return(nil)

	svc := setting.NewService(repo)
	assert.NoError(t, svc.Set(context.Background(), setting.KeyCurrency, "¥"))
}

func TestService_Set_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := setting.NewMockRepository(ctrl)
	svc := setting.NewService(repo)

	err := svc.Set(context.Background(), "", "x")
	assert.ErrorIs(t, err, setting.ErrEmptyKey)
}

func TestService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := setting.NewMockRepository(ctrl)
	repo.EXPECT().
		ListSettings(gomock.Any()).
		Return(map[string]string{setting.KeyCurrency: "€"}, nil)

	svc := setting.NewService(repo)
	snap, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, setting.Settings{Language: "en", Currency: "€"}, snap)
}
