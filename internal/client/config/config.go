// Package config holds runtime settings for the shopkeep CLI and the
// layered loading logic: defaults, then JSON file, then environment, then
// command-line flags, with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the shopkeep CLI.
//
// Fields:
//   - APIBaseURL: origin (plus path prefix) of the storefront backend.
//   - RequestTimeout: per-request HTTP timeout.
//   - TokenFile: path of the persisted session token; empty means the
//     default location under the user config dir.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenFile      string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 30 * time.Second
	c.TokenFile = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
