package interfaces

import (
	"context"

	"github.com/raysh454/fetchurl/internal/model"
)

// WebClient performs HTTP requests for the fetcher. Implementations return an
// error only when no response was obtained; any status code is a response.
type WebClient interface {
	Do(ctx context.Context, req *model.Request) (*model.Response, error)

	// Get issues a GET of url with default headers.
	Get(ctx context.Context, url string) (*model.Response, error)

	// Close releases idle connections or the browser.
	Close() error
}
