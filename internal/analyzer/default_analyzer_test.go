package analyzer_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/fetchurl/internal/analyzer"
	"github.com/raysh454/fetchurl/internal/logging"
	"github.com/raysh454/fetchurl/internal/model"
)

func response(contentType, body string) *model.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &model.Response{Headers: h, Body: []byte(body), StatusCode: 200}
}

func TestSummarize_HTML(t *testing.T) {
	t.Parallel()
	a := analyzer.NewDefaultAnalyzer(logging.NewNop())

	body := `<html><head><title>  Demo Page </title><script src="/a.js"></script></head>
<body>
  <a href="/one">one</a> <a href="/two">two</a> <a name="anchor">no href</a>
  <form action="/login"><input name="u"></form>
  <img src="/x.png"><script>var x = 1;</script>
</body></html>`

	summary, err := a.Summarize(response("text/html; charset=utf-8", body))
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, "Demo Page", summary.Title)
	assert.Equal(t, 2, summary.Links)
	assert.Equal(t, 2, summary.Scripts)
	assert.Equal(t, 1, summary.Forms)
	assert.Equal(t, 1, summary.Images)
}

func TestSummarize_NonHTMLReturnsNil(t *testing.T) {
	t.Parallel()
	a := analyzer.NewDefaultAnalyzer(logging.NewNop())

	for _, ct := range []string{"text/plain", "application/octet-stream", ""} {
		summary, err := a.Summarize(response(ct, "<title>x</title>"))
		require.NoError(t, err, ct)
		assert.Nil(t, summary, ct)
	}
}

func TestSummarize_NilResponse(t *testing.T) {
	t.Parallel()
	a := analyzer.NewDefaultAnalyzer(logging.NewNop())

	summary, err := a.Summarize(nil)
	assert.NoError(t, err)
	assert.Nil(t, summary)
}

func TestIsHTML(t *testing.T) {
	t.Parallel()
	assert.True(t, analyzer.IsHTML("text/html"))
	assert.True(t, analyzer.IsHTML("TEXT/HTML; charset=utf-8"))
	assert.True(t, analyzer.IsHTML("application/xhtml+xml"))
	assert.False(t, analyzer.IsHTML("text/plain"))
	assert.False(t, analyzer.IsHTML(""))
}
