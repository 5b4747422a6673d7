package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables,
// loading a .env file from the working directory first when one exists.
// Unset variables leave the corresponding field untouched; malformed
// numeric values are ignored rather than aborting startup.
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("RESUMECLI_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("RESUMECLI_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("RESUMECLI_RPS"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			cfg.RequestsPerSecond = r
		}
	}
	if v := os.Getenv("RESUMECLI_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("RESUMECLI_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
}
