package config

import "time"

// Config holds runtime settings for the puisi CLI.
//
// Fields:
//   - AuthURL, PuisiURL, ReactionURL: base URLs of the three services.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - SessionFile: SQLite file that keeps the login between runs.
//   - OnlineCheckInterval: how often the CLI checks the services' health.
type Config struct {
	AuthURL             string
	PuisiURL            string
	ReactionURL         string
	RequestTimeout      time.Duration
	SessionFile         string
	OnlineCheckInterval time.Duration
}

// LoadDefaults points c at services running on localhost.
func (c *Config) LoadDefaults() {
	c.AuthURL = "http://localhost:3001"
	c.PuisiURL = "http://localhost:3002"
	c.ReactionURL = "http://localhost:3003"
	c.RequestTimeout = 10 * time.Second
	c.SessionFile = "puisi-session.db"
	c.OnlineCheckInterval = 30 * time.Second
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
