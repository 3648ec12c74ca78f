package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/attendance-engine/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 10000, cfg.Cache.MaxEntries)
	assert.Zero(t, cfg.Cache.FlushInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
cache:
  max_entries: 500
log:
  format: console
`)
	t.Setenv("ATTENDANCE_LOG_LEVEL", "debug")
	t.Setenv("ATTENDANCE_SERVER_PORT", "9191")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port, "env beats file")
	assert.Equal(t, 500, cfg.Cache.MaxEntries)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeConfig(t, "server:\n  port: 70000\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "cache:\n  max_entries: 0\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "log:\n  format: xml\n"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}
