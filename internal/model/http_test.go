package model_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raysh454/fetchurl/internal/model"
)

func TestIsTextContentType(t *testing.T) {
	t.Parallel()
	cases := []struct {
		contentType string
		want        bool
	}{
		{"text/plain", true},
		{"text/html; charset=utf-8", true},
		{"text", true},
		{"application/octet-stream", false},
		{"application/json", false},
		{"", false},
		{"Text/Plain", false},
		{" text/plain", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, model.IsTextContentType(c.contentType), "%q", c.contentType)
	}
}

func TestResponse_ContentType(t *testing.T) {
	t.Parallel()

	var nilResp *model.Response
	assert.Equal(t, "", nilResp.ContentType())
	assert.False(t, nilResp.IsText())

	resp := &model.Response{Headers: http.Header{}}
	assert.Equal(t, "", resp.ContentType())
	assert.False(t, resp.IsText())

	resp.Headers.Set("content-type", "text/html")
	assert.Equal(t, "text/html", resp.ContentType())
	assert.True(t, resp.IsText())
}
