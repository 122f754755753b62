package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api", c.APIBaseURL)
	assert.Equal(t, "devfeed.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.False(t, c.Verbose)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	origDotEnv := dotEnvFile
	dotEnvFile = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() { dotEnvFile = origDotEnv })

	t.Setenv(envAPIURL, "http://env.test/api")
	t.Setenv(envDB, "env.db")

	cfgFile := writeTempJSON(t, "", "", map[string]any{"db_path": "json.db"})
	os.Args = []string{"devfeed", "-config", cfgFile, "-t", "3"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://env.test/api", cfg.APIBaseURL)
	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	origDotEnv := dotEnvFile
	t.Cleanup(func() { dotEnvFile = origDotEnv })

	dir := t.TempDir()
	dotEnvFile = filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotEnvFile, []byte("DEVFEED_DB=dotenv.db\n"), 0o600))

	// Registers cleanup so the variable loaded from the file is removed again.
	t.Setenv(envDB, "")
	require.NoError(t, os.Unsetenv(envDB))
	t.Setenv(envAPIURL, "http://wins.test/api")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "dotenv.db", cfg.DatabasePath)
	assert.Equal(t, "http://wins.test/api", cfg.APIBaseURL)
}

func TestParseEnv_BrokenDotEnvPanics(t *testing.T) {
	origDotEnv := dotEnvFile
	t.Cleanup(func() { dotEnvFile = origDotEnv })

	dotEnvFile = t.TempDir()

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}
