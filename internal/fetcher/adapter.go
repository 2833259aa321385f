package fetcher

import (
	"context"

	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/model"
	"github.com/raysh454/fetchurl/internal/tracker"
	"github.com/raysh454/fetchurl/internal/utils"
)

// entryFromResponse builds the history entry for a run that got a response.
func entryFromResponse(url string, resp *model.Response, outcome model.Outcome, err error) *model.Entry {
	e := &model.Entry{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.ContentType(),
		Size:        int64(len(resp.Body)),
		Digest:      tracker.Digest(resp.Body),
		Outcome:     outcome,
		FetchedAt:   resp.FetchedAt,
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

func failedEntry(url string, err error) *model.Entry {
	return &model.Entry{
		URL:     url,
		Outcome: model.OutcomeFailed,
		Error:   err.Error(),
	}
}

// record stores e under its canonical URL when history is enabled. History
// problems never change the result of a fetch.
func (f *Fetcher) record(ctx context.Context, e *model.Entry) {
	if f.tracker == nil {
		return
	}
	e.URL = utils.HistoryKey(e.URL)
	if err := f.tracker.Record(ctx, e); err != nil {
		f.logger.Warn("failed to record fetch history", interfaces.Field{Key: "error", Value: err})
	}
}

// compareWithHistory debug-logs whether the body differs from the most recent
// fetch of the same URL that got a response.
func (f *Fetcher) compareWithHistory(ctx context.Context, url string, resp *model.Response) {
	if f.tracker == nil {
		return
	}
	last, err := f.tracker.Last(ctx, utils.HistoryKey(url))
	if err != nil {
		f.logger.Warn("failed to read fetch history", interfaces.Field{Key: "error", Value: err})
		return
	}
	if last == nil {
		f.logger.Debug("no previous content recorded for this url")
		return
	}

	fields := []interfaces.Field{
		{Key: "previous_fetch", Value: last.FetchedAt.Format("2006-01-02 15:04:05")},
		{Key: "previous_status", Value: last.StatusCode},
	}
	if last.Digest == tracker.Digest(resp.Body) {
		f.logger.Debug("content unchanged since previous fetch", fields...)
		return
	}
	f.logger.Debug("content changed since previous fetch",
		append(fields, interfaces.Field{Key: "previous_size", Value: last.Size})...)
}
