package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/tmp/data")
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
		assert.Equal(t, "+27", cfg.CountryPrefix)
		assert.Equal(t, 60*time.Second, cfg.RefreshInterval)
		assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
		assert.Equal(t, "/tmp/data", cfg.DataDir)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("", "/tmp/data")
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.WindowTTL)
	})
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server_url: https://review.example.com
campaign_id: c42
country_prefix: "+44"
refresh_interval: 30s
campaigns:
  - id: c42
    name: Summer Launch
  - id: c43
    name: Winter Drop
tui:
  theme: gruvbox
`)

	cfg, err := Load(path, "/tmp/data")
	require.NoError(t, err)

	assert.Equal(t, "https://review.example.com", cfg.ServerURL)
	assert.Equal(t, "c42", cfg.CampaignID)
	assert.Equal(t, "+44", cfg.CountryPrefix)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	// Unset fields keep their defaults.
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)

	assert.Equal(t, "Summer Launch", cfg.CampaignName("c42"))
	assert.Equal(t, "Campaign c99", cfg.CampaignName("c99"))
	assert.Equal(t, "No Campaign Selected", cfg.CampaignName(""))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty server url",
			mutate:  func(c *Config) { c.ServerURL = "" },
			wantErr: "server_url",
		},
		{
			name:    "bad scheme",
			mutate:  func(c *Config) { c.ServerURL = "ftp://x" },
			wantErr: "server_url",
		},
		{
			name:    "bad country prefix",
			mutate:  func(c *Config) { c.CountryPrefix = "27" },
			wantErr: "country_prefix",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.TUI.Theme = "solarized" },
			wantErr: "tui.theme",
		},
		{
			name:    "refresh interval too small",
			mutate:  func(c *Config) { c.RefreshInterval = time.Second },
			wantErr: "refresh_interval",
		},
		{
			name:    "campaign without id",
			mutate:  func(c *Config) { c.Campaigns = []Campaign{{Name: "x"}} },
			wantErr: "campaigns[0]",
		},
		{
			name: "duplicate campaign ids",
			mutate: func(c *Config) {
				c.Campaigns = []Campaign{{ID: "a"}, {ID: "a"}}
			},
			wantErr: "campaigns[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, "server_url: [not, a, url]\n")
	_, err := Load(path, "/tmp/data")
	assert.Error(t, err)
}
