package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envAPIURL = "DEVFEED_API_URL"
	envDB     = "DEVFEED_DB"
)

// dotEnvFile is loaded by parseEnv when it exists. Variables already set in
// the process environment win over the file.
var dotEnvFile = ".env"

// parseEnv overlays Config with DEVFEED_API_URL and DEVFEED_DB. Panics when
// the .env file exists but cannot be parsed.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(envDB); ok && v != "" {
		cfg.DatabasePath = v
	}
}
