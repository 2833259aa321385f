package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/model"
)

var (
	ErrNilLogger = errors.New("tracker: nil logger provided")
	ErrNoPath    = errors.New("tracker: database path is empty")
	ErrNilEntry  = errors.New("tracker: nil entry")
)

// SQLiteTracker implements interfaces.Tracker on a single sqlite file.
type SQLiteTracker struct {
	db     *sql.DB
	logger interfaces.Logger
	config *Config
}

var _ interfaces.Tracker = (*SQLiteTracker)(nil)

// NewSQLiteTracker opens (creating if needed) the database at config.Path.
func NewSQLiteTracker(logger interfaces.Logger, config *Config) (*SQLiteTracker, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if config == nil || config.Path == "" {
		return nil, ErrNoPath
	}

	if dir := filepath.Dir(config.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Debug("history database opened", interfaces.Field{Key: "path", Value: config.Path})

	return &SQLiteTracker{
		db:     db,
		logger: logger,
		config: config,
	}, nil
}

func (t *SQLiteTracker) Record(ctx context.Context, entry *model.Entry) error {
	if entry == nil {
		return ErrNilEntry
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now()
	}

	_, err := t.db.ExecContext(ctx, `
		INSERT INTO fetches (id, url, status_code, content_type, size, digest, outcome, error, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.URL, entry.StatusCode, entry.ContentType, entry.Size,
		entry.Digest, string(entry.Outcome), entry.Error, entry.FetchedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert fetch: %w", err)
	}

	if t.config.MaxHistory > 0 {
		res, err := t.db.ExecContext(ctx, `
			DELETE FROM fetches
			WHERE url = ? AND id NOT IN (
				SELECT id FROM fetches WHERE url = ?
				ORDER BY fetched_at DESC, rowid DESC LIMIT ?
			)`, entry.URL, entry.URL, t.config.MaxHistory)
		if err != nil {
			return fmt.Errorf("prune history: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			t.logger.Debug("pruned history", interfaces.Field{Key: "url", Value: entry.URL}, interfaces.Field{Key: "removed", Value: n})
		}
	}
	return nil
}

const selectEntry = `SELECT id, url, status_code, content_type, size, digest, outcome, error, fetched_at FROM fetches`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*model.Entry, error) {
	var (
		e       model.Entry
		outcome string
		nanos   int64
	)
	if err := row.Scan(&e.ID, &e.URL, &e.StatusCode, &e.ContentType, &e.Size, &e.Digest, &outcome, &e.Error, &nanos); err != nil {
		return nil, err
	}
	e.Outcome = model.Outcome(outcome)
	e.FetchedAt = time.Unix(0, nanos)
	return &e, nil
}

func (t *SQLiteTracker) Last(ctx context.Context, url string) (*model.Entry, error) {
	row := t.db.QueryRowContext(ctx, selectEntry+` WHERE url = ? AND digest != '' ORDER BY fetched_at DESC, rowid DESC LIMIT 1`, url)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last fetch: %w", err)
	}
	return e, nil
}

func (t *SQLiteTracker) List(ctx context.Context, limit int) ([]*model.Entry, error) {
	query := selectEntry + ` ORDER BY fetched_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query fetches: %w", err)
	}
	defer rows.Close()

	var out []*model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fetch: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (t *SQLiteTracker) Close() error {
	return t.db.Close()
}
