package app

import (
	"go.uber.org/zap/zapcore"

	"github.com/raysh454/fetchurl/internal/tracker"
	"github.com/raysh454/fetchurl/internal/webclient"
)

// Config contains everything one fetch invocation needs.
type Config struct {
	// WebClient selects the backend and whether TLS certificates are checked.
	WebClient webclient.Config

	// Tracker enables fetch history when Tracker.Path is set.
	Tracker tracker.Config

	// OutFile receives the raw body instead of stdout.
	OutFile string

	// Debug lowers the log level to DEBUG.
	Debug bool

	// Warning is accepted for compatibility and does not change the level.
	Warning bool
}

// DefaultConfig returns a Config with certificate verification on, logging at
// INFO and no history.
func DefaultConfig() *Config {
	return &Config{
		WebClient: webclient.DefaultConfig(),
	}
}

// LogLevel is the level the invocation logs at.
func (c *Config) LogLevel() zapcore.Level {
	if c.Debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
