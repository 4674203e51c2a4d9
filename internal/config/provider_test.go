package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/govctl/internal/domain/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		v := SetupViper(dir, nil)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.DataDir)
		assert.Equal(t, "default", cfg.Profile)
		assert.Equal(t, config.OutputTable, cfg.Output)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 1, cfg.MaxAttempts)
		assert.Equal(t, 25, cfg.PageSize)
		assert.Empty(t, cfg.OrganizationID)
		assert.Empty(t, cfg.ConfigSource)
	})

	t.Run("local config sets active organization", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config.local.json", `{"organization":"org-7","profile":"default","api_url":"http://localhost:5000/api/"}`)

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)

		assert.Equal(t, "org-7", cfg.OrganizationID)
		assert.Equal(t, "http://localhost:5000/api", cfg.APIURL)
	})

	t.Run("profile values from govctl.toml", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("GOVCTL_TEST_TOKEN", "s3cret")
		writeFile(t, dir, "govctl.toml", `
[profile.staging]
api_url = "https://staging.example.org/api"
token = "${GOVCTL_TEST_TOKEN}"
organization = "org-staging"
timeout = "10s"
max_attempts = 3
page_size = 50
`)
		v := SetupViper(dir, nil)
		v.Set("profile", "staging")

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "https://staging.example.org/api", cfg.APIURL)
		assert.Equal(t, "s3cret", cfg.Token)
		assert.Equal(t, "org-staging", cfg.OrganizationID)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.MaxAttempts)
		assert.Equal(t, 50, cfg.PageSize)
		assert.Equal(t, filepath.Join(dir, GovFileName), cfg.ConfigSource)
	})

	t.Run("explicit values beat profile", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "govctl.toml", `
[profile.default]
api_url = "https://prod.example.org/api"
organization = "org-prod"
`)
		v := SetupViper(dir, nil)
		v.Set("organization", "org-override")

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "org-override", cfg.OrganizationID)
		assert.Equal(t, "https://prod.example.org/api", cfg.APIURL)
	})

	t.Run("unknown profile", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "govctl.toml", `[profile.default]`)
		v := SetupViper(dir, nil)
		v.Set("profile", "missing")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `profile "missing" not found`)
	})

	t.Run("invalid output format", func(t *testing.T) {
		v := SetupViper(t.TempDir(), nil)
		v.Set("output", "xml")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("invalid api url", func(t *testing.T) {
		v := SetupViper(t.TempDir(), nil)
		v.Set("api_url", "not a url")

		_, err := Provider(v)
		require.Error(t, err)
	})
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "api_url", flagKey("api-url"))
	assert.Equal(t, "non_interactive", flagKey("non-interactive"))
	assert.Equal(t, "organization", flagKey("org"))
	assert.Equal(t, "output", flagKey("output"))
}
