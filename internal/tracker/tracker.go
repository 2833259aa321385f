// Package tracker keeps a history of fetches so later runs can tell whether a
// URL's content changed.
package tracker

import (
	"github.com/raysh454/fetchurl/internal/interfaces"
)

// Open returns the sqlite tracker for cfg.Path, or nil when history is not
// configured.
func Open(cfg *Config, logger interfaces.Logger) (interfaces.Tracker, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, nil
	}
	t, err := NewSQLiteTracker(logger, cfg)
	if err != nil {
		return nil, err
	}
	return t, nil
}
