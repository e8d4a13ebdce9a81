package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA foreign_keys=ON",
}

// ConnectSQLite opens the read-only catalog database holding the equipment
// and variants tables.
func ConnectSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// ConnectResultsDB opens (creating if needed) the writable database that
// stores calculation runs.
func ConnectResultsDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	// One writer; pragmas then hold for every statement.
	db.SetMaxOpenConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping results db: %w", err)
	}

	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS bv_results (
			id TEXT PRIMARY KEY,
			unit TEXT NOT NULL,
			kind TEXT NOT NULL,
			bv INTEGER NOT NULL,
			adjusted_bv INTEGER NOT NULL,
			gunnery INTEGER NOT NULL DEFAULT 4,
			piloting INTEGER NOT NULL DEFAULT 5,
			defensive REAL NOT NULL,
			offensive REAL NOT NULL,
			source TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bv_results_unit ON bv_results(unit, created_at)`,
		`CREATE TABLE IF NOT EXISTS bv_report_lines (
			result_id TEXT NOT NULL REFERENCES bv_results(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			label TEXT NOT NULL,
			calculation TEXT,
			result TEXT,
			PRIMARY KEY (result_id, seq)
		)`,
	} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create table: %w", err)
		}
	}

	return db, nil
}
