package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

func TestSetConfig(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, cfg *config.LocalConfig)
		wantErr string
	}{
		{
			name:  "org alias",
			key:   "org",
			value: "org-7",
			check: func(t *testing.T, cfg *config.LocalConfig) { assert.Equal(t, "org-7", cfg.Organization) },
		},
		{
			name:  "profile",
			key:   "Profile",
			value: "staging",
			check: func(t *testing.T, cfg *config.LocalConfig) { assert.Equal(t, "staging", cfg.Profile) },
		},
		{
			name:  "api url",
			key:   "api-url",
			value: "https://gov.example.com/api",
			check: func(t *testing.T, cfg *config.LocalConfig) { assert.Equal(t, "https://gov.example.com/api", cfg.APIURL) },
		},
		{
			name:    "invalid api url",
			key:     "api-url",
			value:   "not a url",
			wantErr: "invalid URL",
		},
		{
			name:    "unknown key",
			key:     "network",
			value:   "x",
			wantErr: "unknown config key: network",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryConfigRepo{}
			result, err := usecase.NewSetConfig(repo).Run(ctx, usecase.SetConfigParams{Key: tt.key, Value: tt.value})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, result.UpdatedConfig)
			tt.check(t, repo.cfg)
		})
	}
}

func TestRemoveConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("requires existing file", func(t *testing.T) {
		_, err := usecase.NewRemoveConfig(&memoryConfigRepo{}).Run(ctx, usecase.RemoveConfigParams{Key: "org"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no config file found")
	})

	t.Run("profile falls back to default", func(t *testing.T) {
		repo := &memoryConfigRepo{cfg: &config.LocalConfig{Profile: "staging", Organization: "org-1"}, exists: true}
		result, err := usecase.NewRemoveConfig(repo).Run(ctx, usecase.RemoveConfigParams{Key: "profile"})

		require.NoError(t, err)
		assert.Equal(t, "staging", result.RemovedValue)
		assert.Equal(t, "default", repo.cfg.Profile)
		assert.Equal(t, "org-1", repo.cfg.Organization)
	})
}

func TestShowConfig(t *testing.T) {
	repo := &memoryConfigRepo{cfg: &config.LocalConfig{Profile: "default", Organization: "org-1"}, exists: true}
	result, err := usecase.NewShowConfig(testConfig(), repo).Run(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Exists)
	assert.Equal(t, "org-1", result.Config.Organization)
	assert.Equal(t, 25, result.Runtime.PageSize)
}

func TestSetConfigRequiresValue(t *testing.T) {
	_, err := usecase.NewSetConfig(&memoryConfigRepo{}).Run(context.Background(), usecase.SetConfigParams{Key: "org"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
