package config

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/curator/internal/core/styles"
)

// countryPrefixPattern matches "+" followed by a 1-3 digit country code.
var countryPrefixPattern = regexp.MustCompile(`^\+\d{1,3}$`)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("server_url", c.ServerURL, validServerURL),
		criterio.Run("country_prefix", c.CountryPrefix, validCountryPrefix),
		criterio.Run("tui.theme", c.TUI.Theme, validTheme),
		c.validateIntervals(),
		c.validateCampaigns(),
	)
}

func validServerURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("is missing a host")
	}
	return nil
}

func validCountryPrefix(prefix string) error {
	if !countryPrefixPattern.MatchString(prefix) {
		return fmt.Errorf("must look like +27, got %q", prefix)
	}
	return nil
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func (c *Config) validateIntervals() error {
	var errs criterio.FieldErrorsBuilder

	if c.RefreshInterval < 5*time.Second {
		errs = errs.Append("refresh_interval", fmt.Errorf("must be at least 5s, got %s", c.RefreshInterval))
	}
	if c.RequestTimeout <= 0 {
		errs = errs.Append("request_timeout", fmt.Errorf("must be positive, got %s", c.RequestTimeout))
	}
	if c.WindowTTL <= 0 {
		errs = errs.Append("window_ttl", fmt.Errorf("must be positive, got %s", c.WindowTTL))
	}

	return errs.ToError()
}

func (c *Config) validateCampaigns() error {
	var errs criterio.FieldErrorsBuilder

	seen := make(map[string]bool, len(c.Campaigns))
	for i, camp := range c.Campaigns {
		field := fmt.Sprintf("campaigns[%d]", i)
		if camp.ID == "" {
			errs = errs.Append(field, fmt.Errorf("id is required"))
			continue
		}
		if seen[camp.ID] {
			errs = errs.Append(field, fmt.Errorf("duplicate campaign id %q", camp.ID))
		}
		seen[camp.ID] = true
	}

	return errs.ToError()
}
