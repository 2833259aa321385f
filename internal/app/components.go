package app

import (
	"io"

	"github.com/pkg/errors"

	"github.com/raysh454/fetchurl/internal/analyzer"
	"github.com/raysh454/fetchurl/internal/fetcher"
	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/tracker"
	"github.com/raysh454/fetchurl/internal/webclient"
)

// Components are the collaborators of one fetch, built from a Config.
type Components struct {
	WebClient interfaces.WebClient
	Tracker   interfaces.Tracker
	Fetcher   *fetcher.Fetcher
}

// NewComponents builds the webclient, the optional history tracker and the
// fetcher. A tracker that cannot be opened is logged and left out.
func NewComponents(cfg *Config, stdout io.Writer, logger interfaces.Logger) (*Components, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	wc, err := webclient.NewWebClient(cfg.WebClient, logger)
	if err != nil {
		return nil, errors.Wrap(err, "new webclient")
	}

	opts := []fetcher.Option{
		fetcher.WithAnalyzer(analyzer.NewDefaultAnalyzer(logger)),
		fetcher.WithDiagnostics(cfg.Debug),
	}

	tr, err := tracker.Open(&cfg.Tracker, logger)
	if err != nil {
		logger.Warn("fetch history disabled", interfaces.Field{Key: "error", Value: err})
		tr = nil
	}
	if tr != nil {
		opts = append(opts, fetcher.WithTracker(tr))
	}

	f, err := fetcher.New(wc, stdout, logger, opts...)
	if err != nil {
		_ = wc.Close()
		if tr != nil {
			_ = tr.Close()
		}
		return nil, errors.Wrap(err, "new fetcher")
	}

	return &Components{
		WebClient: wc,
		Tracker:   tr,
		Fetcher:   f,
	}, nil
}

// Close releases the webclient and the history database.
func (c *Components) Close() error {
	var firstErr error
	if c.WebClient != nil {
		if err := c.WebClient.Close(); err != nil {
			firstErr = err
		}
	}
	if c.Tracker != nil {
		if err := c.Tracker.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
