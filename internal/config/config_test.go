package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CHANT_DB", "CHANT_NOTIFY", "CHANT_CHECKIN_INTERVAL",
		"CHANT_MOBILE_BREAKPOINT", "CHANT_LOG_LEVEL", "CHANT_LOG_USE_CASES", "CHANT_ON_CORRUPT_STATE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	interval, err := cfg.CheckinInterval()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, interval)
	assert.Equal(t, 88, cfg.Calendar.MobileBreakpoint)
	assert.Equal(t, domain.CorruptStateFail, cfg.CorruptStatePolicy())
	assert.False(t, cfg.Notifications.Enabled, "notification permission starts ungranted")

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database: /tmp/chant-test.db
notifications:
  enabled: true
checkin:
  interval: 30m
on_corrupt_state: reset
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/chant-test.db", cfg.Database)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, 3, cfg.Notifications.Burst, "unset keys keep their defaults")
	interval, err := cfg.CheckinInterval()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, interval)
	assert.Equal(t, domain.CorruptStateReset, cfg.CorruptStatePolicy())

	dbPath, err := cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/chant-test.db", dbPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checkin:\n  interval: 30m\n"), 0644))

	t.Setenv("CHANT_DB", "/tmp/env.db")
	t.Setenv("CHANT_NOTIFY", "true")
	t.Setenv("CHANT_CHECKIN_INTERVAL", "5m")
	t.Setenv("CHANT_MOBILE_BREAKPOINT", "120")
	t.Setenv("CHANT_LOG_USE_CASES", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Database)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "5m", cfg.Checkin.Interval)
	assert.Equal(t, 120, cfg.Calendar.MobileBreakpoint)
	assert.True(t, cfg.Log.UseCases)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
checkin:
  interval: soon
notifications:
  burst: 0
on_corrupt_state: ignore
`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checkin.interval")
	assert.Contains(t, err.Error(), "notifications.burst")
	assert.Contains(t, err.Error(), "on_corrupt_state")
}

func TestLoad_MalformedEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHANT_NOTIFY", "sometimes")
	t.Setenv("CHANT_MOBILE_BREAKPOINT", "wide")
	t.Setenv("CHANT_LOG_USE_CASES", "yes please")
	t.Setenv("CHANT_LOG_LEVEL", "loud")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	for _, want := range []string{"CHANT_NOTIFY", "CHANT_MOBILE_BREAKPOINT", "CHANT_LOG_USE_CASES", "log.level"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "error"
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	cfg.Log.UseCases = true
	level, err = cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level, "use-case logging needs info")

	cfg.Log.Level = "debug"
	level, err = cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checkin: [unclosed"), 0644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("CHANT_CONFIG", "/etc/chant.yaml")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/chant.yaml", p)
}
