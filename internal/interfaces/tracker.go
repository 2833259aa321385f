package interfaces

import (
	"context"

	"github.com/raysh454/fetchurl/internal/model"
)

// Tracker records the outcome of each fetch so repeated runs against the same
// URL can be compared.
type Tracker interface {
	// Record stores an entry. An empty entry ID is filled in by the tracker.
	Record(ctx context.Context, entry *model.Entry) error

	// Last returns the most recent entry for url that captured a body (non-empty
	// Digest), or nil when there is none. Failed requests are skipped.
	Last(ctx context.Context, url string) (*model.Entry, error)

	// List returns recent entries, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*model.Entry, error)

	// Close releases resources used by the tracker.
	Close() error
}
