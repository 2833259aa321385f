package tracker

import (
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

//go:embed schema.sql
var schemaFS embed.FS

// MaxDiffBytes bounds SummarizeChange; character diffs grow quadratically.
const MaxDiffBytes = 1 << 20

// applySchema applies the SQLite schema to the database and sets appropriate pragmas.
func applySchema(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}

	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Digest returns the hex sha256 of body.
func Digest(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// SummarizeChange diffs two text bodies with diffmatchpatch. ok is false when
// either side is not valid UTF-8 or is too large to diff.
func SummarizeChange(base, head []byte) (summary ChangeSummary, ok bool) {
	if len(base) > MaxDiffBytes || len(head) > MaxDiffBytes {
		return ChangeSummary{}, false
	}
	if !utf8.Valid(base) || !utf8.Valid(head) {
		return ChangeSummary{}, false
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(base), string(head), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			summary.Inserted += utf8.RuneCountInString(d.Text)
			summary.Hunks++
		case diffmatchpatch.DiffDelete:
			summary.Deleted += utf8.RuneCountInString(d.Text)
			summary.Hunks++
		}
	}
	return summary, true
}
