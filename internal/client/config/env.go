package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// envConfig maps SHOPKEEP_* environment variables onto Config fields.
type envConfig struct {
	APIBaseURL     string        `env:"SHOPKEEP_API_URL"`
	RequestTimeout time.Duration `env:"SHOPKEEP_TIMEOUT"`
	TokenFile      string        `env:"SHOPKEEP_TOKEN_FILE"`
	LogLevel       string        `env:"SHOPKEEP_LOG_LEVEL"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the corresponding fields untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.TokenFile != "" {
		cfg.TokenFile = ec.TokenFile
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
