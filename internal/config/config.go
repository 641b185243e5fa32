// Package config loads the chant configuration from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/chantcounter/internal/calendar"
	"github.com/alexanderramin/chantcounter/internal/checkin"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	dirName  = ".chant"
	fileName = "config.yaml"
	dbName   = "chant.db"
)

type Config struct {
	// Database is the SQLite file path. Empty means ~/.chant/chant.db.
	Database      string              `yaml:"database"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Checkin       CheckinConfig       `yaml:"checkin"`
	Calendar      CalendarConfig      `yaml:"calendar"`
	Log           LogConfig           `yaml:"log"`
	// OnCorruptState is "fail" or "reset".
	OnCorruptState string `yaml:"on_corrupt_state"`

	// envErrs holds environment overrides that failed to parse.
	envErrs []error
}

type NotificationsConfig struct {
	// Enabled grants permission for system notifications. It starts off
	// and must be granted explicitly; in-app confirmations are always shown.
	Enabled bool `yaml:"enabled"`
	// Every is the minimum spacing between notifications once Burst is used.
	Every string `yaml:"every"`
	Burst int    `yaml:"burst"`
}

type CheckinConfig struct {
	Interval string `yaml:"interval"`
}

type CalendarConfig struct {
	MobileBreakpoint int `yaml:"mobile_breakpoint"`
}

type LogConfig struct {
	// Level is debug, info, warn or error.
	Level    string `yaml:"level"`
	UseCases bool   `yaml:"use_cases"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Notifications:  NotificationsConfig{Every: "2s", Burst: 3},
		Checkin:        CheckinConfig{Interval: checkin.DefaultInterval.String()},
		Calendar:       CalendarConfig{MobileBreakpoint: calendar.DefaultBreakpoint},
		Log:            LogConfig{Level: "warn"},
		OnCorruptState: string(domain.CorruptStateFail),
	}
}

// Dir is the per-user data directory, ~/.chant.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Path returns the config file location: $CHANT_CONFIG or
// ~/.chant/config.yaml.
func Path() (string, error) {
	if p := os.Getenv("CHANT_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	applyEnv(cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("CHANT_DB"); v != "" {
		cfg.Database = v
	}
	if v := getenv("CHANT_NOTIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			cfg.envErrs = append(cfg.envErrs, fmt.Errorf("CHANT_NOTIFY: %w", err))
		} else {
			cfg.Notifications.Enabled = b
		}
	}
	if v := getenv("CHANT_CHECKIN_INTERVAL"); v != "" {
		cfg.Checkin.Interval = v
	}
	if v := getenv("CHANT_MOBILE_BREAKPOINT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			cfg.envErrs = append(cfg.envErrs, fmt.Errorf("CHANT_MOBILE_BREAKPOINT: %w", err))
		} else {
			cfg.Calendar.MobileBreakpoint = n
		}
	}
	if v := getenv("CHANT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv("CHANT_LOG_USE_CASES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			cfg.envErrs = append(cfg.envErrs, fmt.Errorf("CHANT_LOG_USE_CASES: %w", err))
		} else {
			cfg.Log.UseCases = b
		}
	}
	if v := getenv("CHANT_ON_CORRUPT_STATE"); v != "" {
		cfg.OnCorruptState = v
	}
}

// Validate checks every duration parses and every enum is known.
func (c *Config) Validate() error {
	errs := append([]error(nil), c.envErrs...)
	if _, err := c.CheckinInterval(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.NotifyEvery(); err != nil {
		errs = append(errs, err)
	}
	if c.Notifications.Burst < 1 {
		errs = append(errs, fmt.Errorf("notifications.burst: must be at least 1, got %d", c.Notifications.Burst))
	}
	if c.Calendar.MobileBreakpoint < 1 {
		errs = append(errs, fmt.Errorf("calendar.mobile_breakpoint: must be at least 1, got %d", c.Calendar.MobileBreakpoint))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch domain.CorruptStatePolicy(c.OnCorruptState) {
	case domain.CorruptStateFail, domain.CorruptStateReset:
	default:
		errs = append(errs, fmt.Errorf("on_corrupt_state: unknown policy %q (want fail or reset)", c.OnCorruptState))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) CheckinInterval() (time.Duration, error) {
	return positiveDuration("checkin.interval", c.Checkin.Interval)
}

func (c *Config) NotifyEvery() (time.Duration, error) {
	return positiveDuration("notifications.every", c.Notifications.Every)
}

// LogLevel parses Log.Level. Logging use cases needs at least info, so
// UseCases lowers a stricter level to info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: unknown level %q (want debug, info, warn or error)", c.Log.Level)
	}
	if c.Log.UseCases && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	return level, nil
}

func (c *Config) CorruptStatePolicy() domain.CorruptStatePolicy {
	return domain.CorruptStatePolicy(c.OnCorruptState)
}

// DatabasePath resolves Database, defaulting to ~/.chant/chant.db.
func (c *Config) DatabasePath() (string, error) {
	if c.Database != "" {
		return c.Database, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbName), nil
}

func positiveDuration(field, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", field, s)
	}
	return d, nil
}
