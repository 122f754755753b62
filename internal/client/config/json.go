package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/devfeed/internal/flagx"
	"github.com/dmitrijs2005/devfeed/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// RequestTimeout accepts "15s" or integer nanoseconds via timex.Duration.
// Pointers distinguish "absent" from "false" for the switches.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_url"`
	DatabasePath   string         `json:"db_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	Verbose        *bool          `json:"verbose"`
	Trace          *bool          `json:"trace"`
}

// parseJson overlays Config with values from the file named by -c or
// -config. Fields absent from the file keep their current values. Panics on
// read or unmarshal errors.
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
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
	if jc.Trace != nil {
		cfg.Trace = *jc.Trace
	}
}
