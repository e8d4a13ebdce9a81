package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
)

var (
	_ ResultStore = (*SQLiteResults)(nil)
	_ ResultStore = (*PostgresResults)(nil)
)

// PostgresResults stores runs in PostgreSQL.
type PostgresResults struct {
	Pool *pgxpool.Pool
}

func NewPostgresResults(pool *pgxpool.Pool) *PostgresResults {
	return &PostgresResults{Pool: pool}
}

// ConnectPostgres opens a pool and creates the results tables.
func ConnectPostgres(ctx context.Context, dsn string) (*PostgresResults, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := NewPostgresResults(pool)
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresResults) Migrate(ctx context.Context) error {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS bv_results (
			id UUID PRIMARY KEY,
			unit TEXT NOT NULL,
			kind TEXT NOT NULL,
			bv INTEGER NOT NULL,
			adjusted_bv INTEGER NOT NULL,
			gunnery INTEGER NOT NULL DEFAULT 4,
			piloting INTEGER NOT NULL DEFAULT 5,
			defensive DOUBLE PRECISION NOT NULL,
			offensive DOUBLE PRECISION NOT NULL,
			source TEXT,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bv_results_unit ON bv_results(unit, created_at)`,
		`CREATE TABLE IF NOT EXISTS bv_report_lines (
			result_id UUID NOT NULL REFERENCES bv_results(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			label TEXT NOT NULL,
			calculation TEXT,
			result TEXT,
			PRIMARY KEY (result_id, seq)
		)`,
	} {
		if _, err := s.Pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func (s *PostgresResults) Close() { s.Pool.Close() }

func (s *PostgresResults) Save(ctx context.Context, rec *Record) error {
	stamp(rec)
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO bv_results (id, unit, kind, bv, adjusted_bv, gunnery, piloting, defensive, offensive, source, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		rec.ID, rec.Unit, string(rec.Kind), rec.BV, rec.AdjustedBV, rec.Gunnery, rec.Piloting,
		rec.Defensive, rec.Offensive, rec.Source, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert result %q: %w", rec.Unit, err)
	}

	batch := &pgx.Batch{}
	for i, l := range rec.Lines {
		batch.Queue(`INSERT INTO bv_report_lines (result_id, seq, label, calculation, result) VALUES ($1,$2,$3,$4,$5)`,
			rec.ID, i, l.Label, l.Calculation, l.Result)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return tx.Commit(ctx)
}

const selectResultPG = `SELECT id::text, unit, kind, bv, adjusted_bv, gunnery, piloting, defensive, offensive, COALESCE(source,''), created_at
	FROM bv_results`

func scanRecordPG(row pgx.Row) (Record, error) {
	var (
		r    Record
		kind string
	)
	err := row.Scan(&r.ID, &r.Unit, &kind, &r.BV, &r.AdjustedBV, &r.Gunnery, &r.Piloting,
		&r.Defensive, &r.Offensive, &r.Source, &r.CreatedAt)
	r.Kind = bv.Kind(kind)
	return r, err
}

func (s *PostgresResults) Latest(ctx context.Context, unit string) (Record, error) {
	r, err := scanRecordPG(s.Pool.QueryRow(ctx, selectResultPG+` WHERE unit = $1 ORDER BY created_at DESC LIMIT 1`, unit))
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("latest result %q: %w", unit, err)
	}

	rows, err := s.Pool.Query(ctx,
		`SELECT label, COALESCE(calculation,''), COALESCE(result,'') FROM bv_report_lines WHERE result_id = $1 ORDER BY seq`, r.ID)
	if err != nil {
		return Record{}, fmt.Errorf("query lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l bv.Line
		if err := rows.Scan(&l.Label, &l.Calculation, &l.Result); err != nil {
			return Record{}, fmt.Errorf("scan line: %w", err)
		}
		r.Lines = append(r.Lines, l)
	}
	return r, rows.Err()
}

func (s *PostgresResults) List(ctx context.Context, unit string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	query := selectResultPG
	args := []any{}
	if unit != "" {
		query += ` WHERE unit = $1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, unit, limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		r, err := scanRecordPG(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
