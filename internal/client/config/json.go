package config

import (
	"encoding/json"
	"os"
	"time"

	"shopkeep/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is a string like "30s", parsed with time.ParseDuration.
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	RequestTimeout string `json:"request_timeout"`
	TokenFile      string `json:"token_file"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file was given, nothing happens. Panics on read or
// unmarshal errors; only fields present in the file are overlaid.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}
	parseJsonFile(cfg, path)
}

func parseJsonFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
