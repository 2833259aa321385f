package app

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/raysh454/fetchurl/internal/fetcher"
	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/logging"
	"github.com/raysh454/fetchurl/internal/model"
	"github.com/raysh454/fetchurl/internal/tracker"
)

// Application is the runtime state of one invocation. It owns the logger and
// the components built from Config; pass it around instead of relying on
// package-level state.
type Application struct {
	Config *Config
	Logger *logging.ZapLogger

	components *Components
}

// NewApplication builds the logger (writing to stderr) and the components for
// cfg. Text responses are printed to stdout.
func NewApplication(cfg *Config, stdout, stderr io.Writer) (*Application, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := logging.New(stderr, cfg.LogLevel())

	c, err := NewComponents(cfg, stdout, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &Application{
		Config:     cfg,
		Logger:     logger,
		components: c,
	}, nil
}

// Run fetches url and returns the process exit code.
func (a *Application) Run(ctx context.Context, url string) int {
	return a.components.Fetcher.Run(ctx, fetcher.Options{
		URL:     url,
		OutFile: a.Config.OutFile,
	})
}

// Close releases every component and flushes the logger.
func (a *Application) Close() error {
	if a == nil {
		return errors.New("application is nil")
	}
	err := a.components.Close()
	// Sync fails on terminals and pipes; there is nothing useful to report.
	_ = a.Logger.Sync()
	return err
}

// History returns up to limit recorded fetches, newest first, from the
// database at cfg.Path.
func History(ctx context.Context, cfg *tracker.Config, limit int, logger interfaces.Logger) ([]*model.Entry, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, errors.New("no history database configured")
	}
	tr, err := tracker.Open(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "open history")
	}
	defer tr.Close()

	return tr.List(ctx, limit)
}
