// Package store keeps a history of unwrapping runs in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lvphase/goldstein"
)

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("store: run not found")

// Run is one recorded unwrapping run.
type Run struct {
	ID         uuid.UUID `db:"id"`
	Algorithm  string    `db:"algorithm"`
	Source     string    `db:"source"`
	Rows       int       `db:"n_rows"`
	Cols       int       `db:"n_cols"`
	Residues   int       `db:"residues"`
	Dipoles    int       `db:"dipoles"`
	Grounded   int       `db:"grounded"`
	Balanced   int       `db:"balanced"`
	Unresolved int       `db:"unresolved"`
	Cuts       int       `db:"cuts"`
	DurationMs int64     `db:"duration_ms"`
	CreatedAt  int64     `db:"created_at"` // unix milliseconds
}

// Created returns CreatedAt as a time in UTC.
func (r Run) Created() time.Time { return time.UnixMilli(r.CreatedAt).UTC() }

// FromReport fills the Goldstein counters of r from rep.
func (r Run) FromReport(rep goldstein.Report) Run {
	r.Residues = rep.Residues
	r.Dipoles = rep.Dipoles
	r.Grounded = rep.Grounded
	r.Balanced = rep.Balanced
	r.Unresolved = len(rep.Unresolved)
	r.Cuts = rep.Cuts
	r.DurationMs = rep.Elapsed.Milliseconds()
	return r
}

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		algorithm TEXT NOT NULL,
		source TEXT NOT NULL,
		n_rows INTEGER NOT NULL,
		n_cols INTEGER NOT NULL,
		residues INTEGER NOT NULL,
		dipoles INTEGER NOT NULL,
		grounded INTEGER NOT NULL,
		balanced INTEGER NOT NULL,
		unresolved INTEGER NOT NULL,
		cuts INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Record inserts run. A zero ID is replaced with a new random UUID and a
// zero CreatedAt with the current time. Returns the stored run.
func (db *DB) Record(run Run) (Run, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixMilli()
	}
	_, err := db.conn.NamedExec(`INSERT INTO runs
		(id, algorithm, source, n_rows, n_cols, residues, dipoles, grounded, balanced,
		 unresolved, cuts, duration_ms, created_at)
		VALUES (:id, :algorithm, :source, :n_rows, :n_cols, :residues, :dipoles, :grounded, :balanced,
		 :unresolved, :cuts, :duration_ms, :created_at)`, run)
	if err != nil {
		return Run{}, fmt.Errorf("store: record run: %w", err)
	}

	return run, nil
}

// Get returns the run with the given ID, or ErrNotFound.
func (db *DB) Get(id uuid.UUID) (Run, error) {
	var run Run
	err := db.conn.Get(&run, "SELECT * FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: get run: %w", err)
	}

	return run, nil
}

// List returns up to limit runs, newest first. limit <= 0 returns all.
func (db *DB) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT * FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}

	return runs, nil
}
