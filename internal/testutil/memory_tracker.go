package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/model"
	"github.com/raysh454/fetchurl/internal/tracker"
)

// ─── MemoryTracker ─────────────────────────────────────────────────────

// MemoryTracker implements interfaces.Tracker in memory with the same
// ordering, Last and pruning rules as the sqlite tracker. Entries are stored
// oldest first.
type MemoryTracker struct {
	// MaxHistory keeps at most this many entries per URL. Zero keeps all.
	MaxHistory int

	mu      sync.Mutex
	entries []*model.Entry
}

var _ interfaces.Tracker = (*MemoryTracker)(nil)

// NewMemoryTracker returns an empty tracker keeping maxHistory entries per URL.
func NewMemoryTracker(maxHistory int) *MemoryTracker {
	return &MemoryTracker{MaxHistory: maxHistory}
}

func (t *MemoryTracker) Record(_ context.Context, entry *model.Entry) error {
	if entry == nil {
		return tracker.ErrNilEntry
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	cp := *entry
	t.entries = append(t.entries, &cp)

	if t.MaxHistory <= 0 {
		return nil
	}
	kept := 0
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].URL != entry.URL {
			continue
		}
		if kept < t.MaxHistory {
			kept++
			continue
		}
		t.entries = append(t.entries[:i], t.entries[i+1:]...)
	}
	return nil
}

func (t *MemoryTracker) Last(_ context.Context, url string) (*model.Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.entries) - 1; i >= 0; i-- {
		if e := t.entries[i]; e.URL == url && e.Digest != "" {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (t *MemoryTracker) List(_ context.Context, limit int) ([]*model.Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*model.Entry, 0, len(t.entries))
	for i := len(t.entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		cp := *t.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (t *MemoryTracker) Close() error { return nil }
