// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a SQLite history of harvest runs. Each run stores
// its mapped Dataset documents so past output can be listed and re-exported
// without talking to the catalog again.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/dataset-bridge/pkg/types"
)

// Store manages the harvest archive database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive database at path, creating the schema
// and the parent directory if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			catalog TEXT NOT NULL,
			started_at TEXT NOT NULL,
			harvested INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS datasets (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			identifier TEXT,
			name TEXT,
			document TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_datasets_identifier ON datasets(identifier)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunInfo describes one harvest run to be recorded.
type RunInfo struct {
	Catalog   string
	StartedAt time.Time
	Harvested int
	Failed    int
}

// RunSummary is one row of the run history.
type RunSummary struct {
	ID        int64
	Catalog   string
	StartedAt time.Time
	Harvested int
	Failed    int
}

// RecordRun stores one finished run and its datasets in a single
// transaction, returning the new run ID. Dataset positions preserve the
// output array order.
func (s *Store) RecordRun(ctx context.Context, info RunInfo, datasets []types.Dataset) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	startedAt := info.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (catalog, started_at, harvested, failed) VALUES (?, ?, ?, ?)`,
		info.Catalog, startedAt.UTC().Format(time.RFC3339), info.Harvested, info.Failed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO datasets (run_id, position, identifier, name, document) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, ds := range datasets {
		doc, err := json.Marshal(ds)
		if err != nil {
			return 0, fmt.Errorf("marshaling dataset %d: %w", i, err)
		}
		var identifier, name any
		if ds.Identifier != nil {
			identifier = *ds.Identifier
		}
		if ds.Name != nil {
			name = *ds.Name
		}
		if _, err := stmt.ExecContext(ctx, runID, i, identifier, name, string(doc)); err != nil {
			return 0, fmt.Errorf("inserting dataset %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs returns the run history, newest first.
func (s *Store) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, catalog, started_at, harvested, failed FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Catalog, &startedAt, &r.Harvested, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, startedAt); parseErr == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Datasets returns the stored Dataset documents of one run in output order.
func (s *Store) Datasets(ctx context.Context, runID int64) ([]types.Dataset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document FROM datasets WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying datasets: %w", err)
	}
	defer rows.Close()

	datasets := []types.Dataset{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning dataset: %w", err)
		}
		var ds types.Dataset
		if err := json.Unmarshal([]byte(doc), &ds); err != nil {
			return nil, fmt.Errorf("decoding stored dataset: %w", err)
		}
		datasets = append(datasets, ds)
	}
	return datasets, rows.Err()
}
