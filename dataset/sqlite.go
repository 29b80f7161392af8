// SPDX-License-Identifier: MIT
//
// File: sqlite.go
// Role: SQLite persistence of runs and their collections.
// Concurrency:
//   - Safe for concurrent use (database/sql pool); each SaveDataset is one
//     transaction, so a run is stored with both collections or not at all.

package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/kclique/tensor"
)

// ErrRunNotFound indicates a run ID with no stored records.
var ErrRunNotFound = errors.New("dataset: run not found")

// SQLiteStore keeps generated datasets in a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and migrates
// the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL;", "PRAGMA foreign_keys=ON;"} {
		if _, err = db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err = s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema migration: %w", err)
	}

	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		manifest JSON NOT NULL
	);

	CREATE TABLE IF NOT EXISTS graphs (
		run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
		collection TEXT NOT NULL,
		idx INTEGER NOT NULL,
		num_nodes INTEGER NOT NULL,
		num_edges INTEGER NOT NULL,
		label INTEGER NOT NULL,
		record JSON NOT NULL,
		PRIMARY KEY (run_id, collection, idx)
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// SaveDataset stores the manifest and both collections of ds in a single
// transaction. It returns the number of JSON bytes written for records.
func (s *SQLiteStore) SaveDataset(ctx context.Context, ds *Dataset) (int64, error) {
	manifest, err := json.Marshal(ds.Manifest)
	if err != nil {
		return 0, fmt.Errorf("SaveDataset: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("SaveDataset: begin: %w", err)
	}
	defer tx.Rollback() // no-op after Commit

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, manifest) VALUES (?, ?, ?)`,
		ds.Manifest.RunID, ds.Manifest.CreatedAt.Format("2006-01-02T15:04:05.000000000Z07:00"), manifest,
	); err != nil {
		return 0, fmt.Errorf("SaveDataset: insert run %s: %w", ds.Manifest.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO graphs (run_id, collection, idx, num_nodes, num_edges, label, record) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("SaveDataset: prepare: %w", err)
	}
	defer stmt.Close()

	var written int64
	for _, name := range []string{CollectionWith, CollectionWithout} {
		graphs, err := ds.Collection(name)
		if err != nil {
			return 0, fmt.Errorf("SaveDataset: %w", err)
		}
		for i := range graphs {
			raw, err := json.Marshal(&graphs[i])
			if err != nil {
				return 0, fmt.Errorf("SaveDataset: %s[%d]: %w", name, i, err)
			}
			if _, err = stmt.ExecContext(ctx, ds.Manifest.RunID, name, i,
				graphs[i].NumNodes, graphs[i].NumEdges(), graphs[i].Label, raw); err != nil {
				return 0, fmt.Errorf("SaveDataset: %s[%d]: %w", name, i, err)
			}
			written += int64(len(raw))
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("SaveDataset: commit: %w", err)
	}
	return written, nil
}

// LoadCollection returns the records of one collection of a run, in index
// order.
func (s *SQLiteStore) LoadCollection(ctx context.Context, runID, collection string) ([]tensor.Graph, error) {
	if collection != CollectionWith && collection != CollectionWithout {
		return nil, fmt.Errorf("LoadCollection: %q: %w", collection, ErrUnknownCollection)
	}
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE run_id = ?`, runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("LoadCollection: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("LoadCollection: %s: %w", runID, ErrRunNotFound)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT record FROM graphs WHERE run_id = ? AND collection = ? ORDER BY idx`, runID, collection)
	if err != nil {
		return nil, fmt.Errorf("LoadCollection: %w", err)
	}
	defer rows.Close()

	var out []tensor.Graph
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("LoadCollection: scan: %w", err)
		}
		var g tensor.Graph
		if err = json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("LoadCollection: decode: %w", err)
		}
		out = append(out, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("LoadCollection: %w", err)
	}

	return out, nil
}

// Runs lists stored manifests, oldest first.
func (s *SQLiteStore) Runs(ctx context.Context) ([]Manifest, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT manifest FROM runs ORDER BY created_at, run_id`)
	if err != nil {
		return nil, fmt.Errorf("Runs: %w", err)
	}
	defer rows.Close()

	var out []Manifest
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("Runs: scan: %w", err)
		}
		var m Manifest
		if err = json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("Runs: decode: %w", err)
		}
		out = append(out, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("Runs: %w", err)
	}

	return out, nil
}
