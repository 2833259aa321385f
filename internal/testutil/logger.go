package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/raysh454/fetchurl/internal/interfaces"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements interfaces.Logger with in-memory recording, so tests
// can assert on what was logged without parsing formatted output.
type DummyLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry is one message captured by DummyLogger.
type LogEntry struct {
	Level  string
	Msg    string
	Fields []interfaces.Field
}

// NewDummyLogger returns an empty recording logger.
func NewDummyLogger() *DummyLogger {
	return &DummyLogger{}
}

func (tl *DummyLogger) record(level, msg string, fields []interfaces.Field) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.entries = append(tl.entries, LogEntry{Level: level, Msg: msg, Fields: fields})
}

func (tl *DummyLogger) Debug(msg string, fields ...interfaces.Field) { tl.record("debug", msg, fields) }
func (tl *DummyLogger) Info(msg string, fields ...interfaces.Field)  { tl.record("info", msg, fields) }
func (tl *DummyLogger) Warn(msg string, fields ...interfaces.Field)  { tl.record("warn", msg, fields) }
func (tl *DummyLogger) Error(msg string, fields ...interfaces.Field) { tl.record("error", msg, fields) }

func (tl *DummyLogger) With(_ ...interfaces.Field) interfaces.Logger { return tl }

// Entries returns a copy of the captured messages.
func (tl *DummyLogger) Entries() []LogEntry {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	out := make([]LogEntry, len(tl.entries))
	copy(out, tl.entries)
	return out
}

// Messages returns the captured messages at level, in order.
func (tl *DummyLogger) Messages(level string) []string {
	var out []string
	for _, e := range tl.Entries() {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}

// Contains reports whether any message at level contains substr.
func (tl *DummyLogger) Contains(level, substr string) bool {
	for _, m := range tl.Messages(level) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func (tl *DummyLogger) String() string {
	var b strings.Builder
	for _, e := range tl.Entries() {
		fmt.Fprintf(&b, "[%s] %s %v\n", strings.ToUpper(e.Level), e.Msg, e.Fields)
	}
	return b.String()
}
