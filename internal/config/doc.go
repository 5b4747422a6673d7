// Package config loads runtime configuration for the resume CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-r float    outbound requests per second
//	-e string   export directory
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "request_timeout": "15s",
//	  "requests_per_second": 4,
//	  "export_dir": "export"
//	}
//
// Environment variables
//
//	RESUMECLI_API_BASE_URL
//	RESUMECLI_REQUEST_TIMEOUT   Go duration string, e.g. "30s"
//	RESUMECLI_RPS
//	RESUMECLI_EXPORT_DIR
//	RESUMECLI_SESSION_FILE
package config
