package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// RecentFile is one row of the recent-files index.
type RecentFile struct {
	Path     string    `json:"path"`
	OpenedAt time.Time `json:"openedAt"`
	Entries  int       `json:"entries"`
}

// Recent is the sqlite-backed index of files opened in the editor.
type Recent struct {
	db  *sql.DB
	now func() time.Time
}

// OpenRecent opens (creating if needed) the index at path.
func OpenRecent(ctx context.Context, path string) (*Recent, error) {
	if path == "" {
		return nil, errors.New("recent index: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The editor and CLI may have the index open at the same time.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS recent (
		path TEXT PRIMARY KEY,
		opened_at INTEGER NOT NULL,
		entries INTEGER NOT NULL DEFAULT 0
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Recent{db: db, now: time.Now}, nil
}

func (r *Recent) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Touch records that path was opened or saved with the given entry count.
func (r *Recent) Touch(ctx context.Context, path string, entries int) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO recent(path, opened_at, entries) VALUES(?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET opened_at=excluded.opened_at, entries=excluded.entries;`,
		abs, r.now().UTC().UnixMilli(), entries)
	return err
}

// List returns up to limit files, most recent first.
func (r *Recent) List(ctx context.Context, limit int) ([]RecentFile, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT path, opened_at, entries FROM recent
		ORDER BY opened_at DESC, path ASC LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentFile
	for rows.Next() {
		var (
			f  RecentFile
			ms int64
		)
		if err := rows.Scan(&f.Path, &ms, &f.Entries); err != nil {
			return nil, err
		}
		f.OpenedAt = time.UnixMilli(ms).UTC()
		out = append(out, f)
	}
	return out, rows.Err()
}

// Forget removes path from the index.
func (r *Recent) Forget(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM recent WHERE path = ?;`, abs)
	return err
}

// Prune keeps only the keep most recent rows.
func (r *Recent) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM recent WHERE path NOT IN (
		SELECT path FROM recent ORDER BY opened_at DESC, path ASC LIMIT ?
	);`, keep)
	return err
}
