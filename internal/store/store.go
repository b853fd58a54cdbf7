// Package store persists recorded runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/gottacatchenall/WorkshopGOL/internal/store/migrations"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no recording has the requested id.
var ErrNotFound = errors.New("store: recording not found")

// Store saves and loads recordings.
type Store struct {
	db *sql.DB
}

// Summary describes a stored recording without its frames.
type Summary struct {
	ID        int64
	Name      string
	Size      core.Size
	Frames    int
	Seed      int64
	CreatedAt time.Time
}

// Open opens the SQLite file at path and applies the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts rec and all of its frames, returning the new id.
func (s *Store) Save(ctx context.Context, rec *core.Recording) (id int64, err error) {
	if rec == nil || rec.Len() == 0 {
		return 0, fmt.Errorf("recording has no frames")
	}
	params, err := yaml.Marshal(rec.Params)
	if err != nil {
		return 0, fmt.Errorf("encode params: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO recordings (name, width, height, states, seed, params, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Size.W, rec.Size.H, rec.States, rec.Seed, string(params), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert recording: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("recording id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO frames (recording_id, t, cells) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare frames: %w", err)
	}
	defer stmt.Close()
	for t, cells := range rec.Frames {
		if _, err = stmt.ExecContext(ctx, id, t, cells); err != nil {
			return 0, fmt.Errorf("insert frame %d: %w", t, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save: %w", err)
	}
	return id, nil
}

// Load reads the recording stored under id.
func (s *Store) Load(ctx context.Context, id int64) (*core.Recording, error) {
	rec := &core.Recording{}
	var params string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, width, height, states, seed, params FROM recordings WHERE id = ?`, id,
	).Scan(&rec.Name, &rec.Size.W, &rec.Size.H, &rec.States, &rec.Seed, &params)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load recording %d: %w", id, err)
	}
	if err := yaml.Unmarshal([]byte(params), &rec.Params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT cells FROM frames WHERE recording_id = ? ORDER BY t`, id)
	if err != nil {
		return nil, fmt.Errorf("load frames %d: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var cells []byte
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		rec.Frames = append(rec.Frames, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frames: %w", err)
	}
	return rec, nil
}

// List returns a summary of every stored recording, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.name, r.width, r.height, r.seed, r.created_at, COUNT(f.t)
		 FROM recordings r LEFT JOIN frames f ON f.recording_id = r.id
		 GROUP BY r.id ORDER BY r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			created int64
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Size.W, &sum.Size.H, &sum.Seed, &created, &sum.Frames); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		sum.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes a recording and its frames.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recordings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recording %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}
