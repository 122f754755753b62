// Package config loads runtime configuration for the DevFeed CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: DEVFEED_API_URL and DEVFEED_DB, also read from a .env
//     file in the working directory when one exists.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-d string   local database file
//	-t int      request timeout (seconds)
//	-v          verbose logging
//	-trace      print trace spans to stdout
//
// # JSON schema
//
// Timeouts use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds:
//
//	{
//	  "api_url": "http://localhost:8000/api",
//	  "db_path": "devfeed.db",
//	  "request_timeout": "15s",
//	  "verbose": false,
//	  "trace": false
//	}
package config
