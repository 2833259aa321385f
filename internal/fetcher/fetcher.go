package fetcher

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/raysh454/fetchurl/internal/analyzer"
	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/model"
)

// ErrNoWebClient is returned by HTTPGet when the fetcher was built without one.
var ErrNoWebClient = errors.New("fetcher: webclient is nil")

// Module: fetcher
// Fetches one URL and prints it, writes it to a file, or reports why it did
// neither.
type Fetcher struct {
	wc       interfaces.WebClient
	stdout   io.Writer
	logger   interfaces.Logger
	tracker  interfaces.Tracker
	analyzer analyzer.Analyzer

	// diagnostics enables debug output that costs extra work: the HTML
	// summary and the overwrite report.
	diagnostics bool
}

// Option configures optional collaborators of a Fetcher.
type Option func(*Fetcher)

// WithTracker records every run in t.
func WithTracker(t interfaces.Tracker) Option {
	return func(f *Fetcher) { f.tracker = t }
}

// WithAnalyzer debug-logs a summary of HTML responses.
func WithAnalyzer(a analyzer.Analyzer) Option {
	return func(f *Fetcher) { f.analyzer = a }
}

// WithDiagnostics turns on the debug-only HTML summary and overwrite report.
// Pass true when the logger emits debug messages.
func WithDiagnostics(enabled bool) Option {
	return func(f *Fetcher) { f.diagnostics = enabled }
}

// New creates a Fetcher printing text responses to stdout.
func New(wc interfaces.WebClient, stdout io.Writer, logger interfaces.Logger, opts ...Option) (*Fetcher, error) {
	if logger == nil {
		return nil, errors.New("fetcher: nil logger provided")
	}
	if stdout == nil {
		return nil, errors.New("fetcher: nil stdout provided")
	}
	f := &Fetcher{
		wc:     wc,
		stdout: stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Run performs exactly one GET of opts.URL and emits the result. It returns
// the process exit code; errors are logged, never returned.
func (f *Fetcher) Run(ctx context.Context, opts Options) int {
	f.logger.Debug(fmt.Sprintf("Start running (url: %s, Go-Version: %s)", opts.URL, runtime.Version()))

	resp, err := f.HTTPGet(ctx, opts.URL)
	if err != nil {
		f.logger.Error(fmt.Sprintf("Exception raised during fetching content (%v)", err))
		for _, line := range stackLines(err) {
			f.logger.Error(line)
		}
		f.logger.Error("Aborting")
		f.record(ctx, failedEntry(opts.URL, err))
		return ExitFetchFailed
	}

	f.logResponse(resp)
	f.summarize(resp)
	f.compareWithHistory(ctx, opts.URL, resp)

	if opts.OutFile != "" {
		if err := f.writeFile(opts.OutFile, resp.Body); err != nil {
			f.logger.Error(fmt.Sprintf("Failed to write content to %q (%v)", opts.OutFile, err))
			f.record(ctx, entryFromResponse(opts.URL, resp, model.OutcomeFailed, err))
			return ExitWriteFailed
		}
		f.record(ctx, entryFromResponse(opts.URL, resp, model.OutcomeWritten, nil))
	} else {
		outcome := f.emit(resp)
		f.record(ctx, entryFromResponse(opts.URL, resp, outcome, nil))
	}

	f.logger.Debug("Finished running")
	return ExitOK
}

// Makes an HTTP GET Request to the given parameter and returns the response.
func (f *Fetcher) HTTPGet(ctx context.Context, page string) (*model.Response, error) {
	if f.wc == nil {
		return nil, errors.WithStack(ErrNoWebClient)
	}
	return f.wc.Get(ctx, page)
}

func (f *Fetcher) logResponse(resp *model.Response) {
	f.logger.Debug(fmt.Sprintf("status_code: %d", resp.StatusCode))
	f.logger.Debug("headers: ")

	names := make([]string, 0, len(resp.Headers))
	for name := range resp.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f.logger.Debug(fmt.Sprintf("  %s: %s", name, strings.Join(resp.Headers[name], ", ")))
	}
}

func (f *Fetcher) summarize(resp *model.Response) {
	if f.analyzer == nil || !f.diagnostics {
		return
	}
	if _, err := f.analyzer.Summarize(resp); err != nil {
		f.logger.Debug("could not summarize document", interfaces.Field{Key: "error", Value: err})
	}
}

// stackLines renders err with its pkg/errors stack, one log line per entry.
func stackLines(err error) []string {
	return strings.Split(strings.TrimRight(fmt.Sprintf("%+v", err), "\n"), "\n")
}
