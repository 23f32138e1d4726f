// Package config handles configuration loading and validation for curator.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// ServerURL is the base URL of the campaign review service.
	ServerURL string `yaml:"server_url"`
	// CampaignID selects the campaign to open by default.
	CampaignID string `yaml:"campaign_id"`
	// Campaigns names the campaigns offered by the startup picker.
	Campaigns []Campaign `yaml:"campaigns"`

	// CountryPrefix replaces a leading "0" in local contact numbers.
	CountryPrefix string `yaml:"country_prefix"`

	RefreshInterval time.Duration `yaml:"refresh_interval"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	// WindowTTL is how long a messaging window is reused before it is
	// treated as stale.
	WindowTTL time.Duration `yaml:"window_ttl"`

	TUI TUIConfig `yaml:"tui"`

	DataDir string `yaml:"-"` // set by caller, not from config file
}

// Campaign is one entry in the startup campaign picker.
type Campaign struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ServerURL:       "http://localhost:5000",
		CountryPrefix:   "+27",
		RefreshInterval: 60 * time.Second,
		RequestTimeout:  15 * time.Second,
		WindowTTL:       5 * time.Minute,
		TUI:             TUIConfig{Theme: "tokyo-night"},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.ServerURL == "" {
		c.ServerURL = defaults.ServerURL
	}
	if c.CountryPrefix == "" {
		c.CountryPrefix = defaults.CountryPrefix
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = defaults.RefreshInterval
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaults.RequestTimeout
	}
	if c.WindowTTL == 0 {
		c.WindowTTL = defaults.WindowTTL
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// CampaignName returns the display name for a campaign id, falling back to
// the id itself when the campaign is not listed in the config.
func (c *Config) CampaignName(id string) string {
	for _, camp := range c.Campaigns {
		if camp.ID == id {
			return camp.Name
		}
	}
	if id == "" {
		return "No Campaign Selected"
	}
	return "Campaign " + id
}
