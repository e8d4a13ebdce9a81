package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
)

// ErrNotFound is returned by Latest when a unit has no stored runs.
var ErrNotFound = errors.New("result not found")

const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Record is one stored calculation run.
type Record struct {
	ID         string    `json:"id"`
	Unit       string    `json:"unit"`
	Kind       bv.Kind   `json:"kind"`
	BV         int       `json:"bv"`
	AdjustedBV int       `json:"adjustedBv"`
	Gunnery    int       `json:"gunnery"`
	Piloting   int       `json:"piloting"`
	Defensive  float64   `json:"defensive"`
	Offensive  float64   `json:"offensive"`
	Source     string    `json:"source,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Lines      []bv.Line `json:"lines,omitempty"`
}

// NewRecord builds a record from a calculation result at the given skill.
func NewRecord(res bv.Result, gunnery, piloting int, source string) (Record, error) {
	adj, err := bv.AdjustForSkill(res.BV, gunnery, piloting)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Unit:       res.Unit,
		Kind:       res.Kind,
		BV:         res.BV,
		AdjustedBV: adj,
		Gunnery:    gunnery,
		Piloting:   piloting,
		Defensive:  res.Defensive,
		Offensive:  res.Offensive,
		Source:     source,
		Lines:      res.Report.Lines(),
	}, nil
}

// ResultStore persists calculation runs.
type ResultStore interface {
	// Save assigns the record an ID and timestamp and stores it with its
	// report lines.
	Save(ctx context.Context, rec *Record) error
	// Latest returns the newest run for a unit, report lines included.
	Latest(ctx context.Context, unit string) (Record, error)
	// List returns runs newest first without report lines. An empty unit
	// lists every unit.
	List(ctx context.Context, unit string, limit int) ([]Record, error)
}

func stamp(rec *Record) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
}

// SQLiteResults stores runs in the results database opened by
// ConnectResultsDB.
type SQLiteResults struct {
	DB *sql.DB
}

func NewSQLiteResults(db *sql.DB) *SQLiteResults {
	return &SQLiteResults{DB: db}
}

func (s *SQLiteResults) Save(ctx context.Context, rec *Record) error {
	stamp(rec)
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bv_results (id, unit, kind, bv, adjusted_bv, gunnery, piloting, defensive, offensive, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Unit, string(rec.Kind), rec.BV, rec.AdjustedBV, rec.Gunnery, rec.Piloting,
		rec.Defensive, rec.Offensive, rec.Source, rec.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert result %q: %w", rec.Unit, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO bv_report_lines (result_id, seq, label, calculation, result) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare lines: %w", err)
	}
	defer stmt.Close()
	for i, l := range rec.Lines {
		if _, err := stmt.ExecContext(ctx, rec.ID, i, l.Label, l.Calculation, l.Result); err != nil {
			return fmt.Errorf("insert line %d: %w", i, err)
		}
	}

	return tx.Commit()
}

const selectResult = `SELECT id, unit, kind, bv, adjusted_bv, gunnery, piloting, defensive, offensive, COALESCE(source,''), created_at
	FROM bv_results`

func scanRecord(sc interface{ Scan(...any) error }) (Record, error) {
	var (
		r       Record
		kind    string
		created string
	)
	if err := sc.Scan(&r.ID, &r.Unit, &kind, &r.BV, &r.AdjustedBV, &r.Gunnery, &r.Piloting,
		&r.Defensive, &r.Offensive, &r.Source, &created); err != nil {
		return Record{}, err
	}
	r.Kind = bv.Kind(kind)
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	r.CreatedAt = t
	return r, nil
}

func (s *SQLiteResults) Latest(ctx context.Context, unit string) (Record, error) {
	row := s.DB.QueryRowContext(ctx, selectResult+` WHERE unit = ? ORDER BY created_at DESC LIMIT 1`, unit)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("latest result %q: %w", unit, err)
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT label, COALESCE(calculation,''), COALESCE(result,'') FROM bv_report_lines WHERE result_id = ? ORDER BY seq`, r.ID)
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

func (s *SQLiteResults) List(ctx context.Context, unit string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	var (
		rows *sql.Rows
		err  error
	)
	if unit != "" {
		rows, err = s.DB.QueryContext(ctx, selectResult+` WHERE unit = ? ORDER BY created_at DESC LIMIT ?`, unit, limit)
	} else {
		rows, err = s.DB.QueryContext(ctx, selectResult+` ORDER BY created_at DESC LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
