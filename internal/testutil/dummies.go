// Package testutil provides shared test doubles for use across package tests.
// The dummies implement the interfaces in internal/interfaces so they can be
// injected into components under test without network or disk I/O.
package testutil

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/model"
)

// ─── WebClient ─────────────────────────────────────────────────────────

// DummyWebClient implements interfaces.WebClient.
// It answers every request with a copy of Response (status 200 and body
// "ok:<url>" when Response is nil). Set Err to fail every request instead.
type DummyWebClient struct {
	Response *model.Response
	Err      error

	mu       sync.Mutex
	Requests []*model.Request
	Closed   bool
}

var _ interfaces.WebClient = (*DummyWebClient)(nil)

func (d *DummyWebClient) Do(ctx context.Context, req *model.Request) (*model.Response, error) {
	d.mu.Lock()
	d.Requests = append(d.Requests, req)
	d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if d.Err != nil {
		return nil, errors.WithStack(d.Err)
	}

	if d.Response == nil {
		return &model.Response{
			Request:    req,
			Headers:    http.Header{"Content-Type": {"text/plain"}},
			Body:       []byte("ok:" + req.URL),
			StatusCode: http.StatusOK,
			FetchedAt:  time.Now(),
		}, nil
	}
	resp := *d.Response
	resp.Request = req
	if resp.FetchedAt.IsZero() {
		resp.FetchedAt = time.Now()
	}
	return &resp, nil
}

func (d *DummyWebClient) Get(ctx context.Context, url string) (*model.Response, error) {
	return d.Do(ctx, &model.Request{Method: http.MethodGet, URL: url})
}

func (d *DummyWebClient) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Closed = true
	return nil
}

// ─── Tracker ───────────────────────────────────────────────────────────

// DummyTracker implements interfaces.Tracker by returning the configured
// errors. Recorded entries are kept only when RecordErr is nil.
type DummyTracker struct {
	RecordErr error
	LastErr   error
	LastEntry *model.Entry

	mu       sync.Mutex
	Recorded []*model.Entry
}

var _ interfaces.Tracker = (*DummyTracker)(nil)

func (t *DummyTracker) Record(_ context.Context, e *model.Entry) error {
	if t.RecordErr != nil {
		return t.RecordErr
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	cp := *e
	t.Recorded = append(t.Recorded, &cp)
	return nil
}

func (t *DummyTracker) Last(context.Context, string) (*model.Entry, error) {
	return t.LastEntry, t.LastErr
}

func (t *DummyTracker) List(context.Context, int) ([]*model.Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*model.Entry(nil), t.Recorded...), nil
}

func (t *DummyTracker) Close() error { return nil }
