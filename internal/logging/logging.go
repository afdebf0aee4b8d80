// Package logging builds the zerolog logger shared by the liteosc programs.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "LITEOSC_LOG_LEVEL"
	EnvLogTimestamp = "LITEOSC_LOG_TIMESTAMP"
	EnvLogNoColor   = "LITEOSC_LOG_NOCOLOR"
)

// Profile picks the defaults Configure starts from.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config selects how the logger writes.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

var configureOnce sync.Once

// ConfigureRuntime configures logging for a long-running program.
func ConfigureRuntime(app string) zerolog.Logger {
	return Configure(ProfileRuntime, app)
}

// ConfigureTests configures debug logging without timestamps.
func ConfigureTests(app string) zerolog.Logger {
	return Configure(ProfileTest, app)
}

// Configure sets the global logger of zerolog/log once per process, using
// the profile defaults and the LITEOSC_LOG_* overrides. Later calls return
// the logger set by the first one.
func Configure(profile Profile, app string) zerolog.Logger {
	configureOnce.Do(func() {
		cfg := DefaultConfig(profile)
		applyEnvOverrides(&cfg)
		log.Logger = New(cfg, os.Stdout).With().Str("app", app).Logger()
	})
	return log.Logger
}

// DefaultConfig returns the settings of profile before env overrides.
func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// New returns a console logger writing to out.
func New(cfg Config, out io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	ctx := zerolog.New(output).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level. The second result is
// false for empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
