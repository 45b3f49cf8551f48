package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - CatalogBaseURL: base URL of the remote catalog API.
//   - DatabaseDSN: path of the local sqlite database file.
//   - MinLoadingDelay: minimum visible duration of the catalog loading state.
//   - NotificationTTL: how long a notification stays on screen.
type Config struct {
	CatalogBaseURL  string
	DatabaseDSN     string
	MinLoadingDelay time.Duration
	NotificationTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.CatalogBaseURL = "https://fakestoreapi.com"
	c.DatabaseDSN = "storefront.db"
	c.MinLoadingDelay = 1 * time.Second
	c.NotificationTTL = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
