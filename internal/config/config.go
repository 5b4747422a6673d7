package config

import "time"

// Config holds runtime settings for the resume CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API, including the /api prefix.
//   - RequestTimeout: per-request deadline for backend calls.
//   - RequestsPerSecond: outbound request rate cap.
//   - ExportDir: directory where exported documents are written.
//   - SessionFile: path of the persisted session file; empty means the
//     per-user default location.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	ExportDir         string
	SessionFile       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 15 * time.Second
	c.RequestsPerSecond = 4
	c.ExportDir = "export"
	c.SessionFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file
// (if present) and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
