package model

import (
	"net/http"
	"strings"
	"time"
)

type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

type Response struct {
	Request    *Request
	Headers    http.Header
	Body       []byte
	StatusCode int
	FetchedAt  time.Time
}

// ContentType returns the raw Content-Type header, or "" when absent.
func (r *Response) ContentType() string {
	if r == nil || r.Headers == nil {
		return ""
	}
	return r.Headers.Get("Content-Type")
}

// IsText reports whether the response declares a textual content type, i.e.
// its Content-Type value begins with the literal prefix "text".
func (r *Response) IsText() bool {
	return IsTextContentType(r.ContentType())
}

// IsTextContentType applies the textual rule to a raw header value.
// Matching is case-sensitive and does not trim whitespace.
func IsTextContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "text")
}
