package webclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/fetchurl/internal/logging"
	"github.com/raysh454/fetchurl/internal/model"
	"github.com/raysh454/fetchurl/internal/webclient"
)

func newChromedp(t *testing.T) *webclient.ChromedpClient {
	t.Helper()
	client, err := webclient.NewChromedpClient(webclient.Config{
		Client:    webclient.ClientChromedp,
		IdleAfter: 200 * time.Millisecond,
		MaxWait:   5 * time.Second,
	}, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestChromedpClient_DoRejectsNonGET(t *testing.T) {
	t.Parallel()
	client := newChromedp(t)

	_, err := client.Do(context.Background(), &model.Request{
		Method: "POST",
		URL:    "http://example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, webclient.ErrMethodNotSupported))
}

func TestChromedpClient_DoNilRequest(t *testing.T) {
	t.Parallel()
	client := newChromedp(t)

	_, err := client.Do(context.Background(), nil)
	assert.True(t, errors.Is(err, webclient.ErrNilRequest))
}

// TestChromedpClient_GetRendersPage needs a local Chrome; it is skipped when
// the browser cannot be started.
func TestChromedpClient_GetRendersPage(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, `<html><body><p id="x">ok</p></body></html>`)
	}))
	defer ts.Close()

	client := newChromedp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, ts.URL)
	if err != nil {
		t.Skipf("Skipping chromedp fetch (environment does not support chromedp): %v", err)
	}

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), `<p id="x">ok</p>`)
	assert.True(t, resp.IsText())
}
