package config

import "time"

// Config holds runtime settings for the DevFeed CLI.
//
// Fields:
//   - APIBaseURL: base of the REST API, e.g. http://localhost:8000/api.
//   - DatabasePath: SQLite file that keeps the session tokens.
//   - RequestTimeout: per-request HTTP timeout.
//   - Verbose: debug-level logging.
//   - Trace: print OpenTelemetry spans to stdout.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	Verbose        bool
	Trace          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DatabasePath = "devfeed.db"
	c.RequestTimeout = 15 * time.Second
	c.Verbose = false
	c.Trace = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (.env included), JSON (if present) and command-line flags
// (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
