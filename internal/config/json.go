package config

import (
	"encoding/json"
	"os"
	"time"

	"resumecli/internal/flagx"
	"resumecli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the timeout either as a string
// like "15s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	RequestsPerSecond float64        `json:"requests_per_second"`
	ExportDir         string         `json:"export_dir"`
	SessionFile       string         `json:"session_file"`
}

// parseJson overlays Config with values loaded from a JSON file. The
// file path comes from the -c or -config flags; when neither is given
// no JSON is loaded. Read or unmarshal errors panic, since a config
// file that was explicitly requested but cannot be used is fatal.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = jc.RequestsPerSecond
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
}
