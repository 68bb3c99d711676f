// Package history persists generated report text. Selections and
// prompts are never stored; only the generation output is kept, so the
// weekly workflow can draw on past daily reports.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"briefgen/internal/domain"
)

// ErrNotFound indicates no report exists with the requested id.
var ErrNotFound = errors.New("report not found")

// Report is one saved generation result.
type Report struct {
	ID         string
	Mode       domain.ReportMode
	ReportDate string
	Content    string
	Model      string
	CreatedAt  time.Time
}

// Store reads and writes saved reports.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save inserts a new report and returns it with id and created_at set.
func (s *Store) Save(ctx context.Context, mode domain.ReportMode, reportDate, content, model string) (*Report, error) {
	r := &Report{
		ID:         uuid.NewString(),
		Mode:       mode,
		ReportDate: reportDate,
		Content:    content,
		Model:      model,
		CreatedAt:  time.Now().UTC(),
	}

	query := `INSERT INTO reports (id, mode, report_date, content, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, string(r.Mode), r.ReportDate, r.Content, r.Model,
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting report: %w", err)
	}
	return r, nil
}

// List returns the most recent reports, newest first, up to limit.
// A limit of 0 or less means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]*Report, error) {
	query := `SELECT id, mode, report_date, content, model, created_at
		FROM reports ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		r, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

// Get returns one report by id.
func (s *Store) Get(ctx context.Context, id string) (*Report, error) {
	query := `SELECT id, mode, report_date, content, model, created_at
		FROM reports WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	r, err := scanReport(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

func scanReport(scan func(dest ...any) error) (*Report, error) {
	var r Report
	var mode, createdAtStr string

	if err := scan(&r.ID, &mode, &r.ReportDate, &r.Content, &r.Model, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	r.Mode = domain.ReportMode(mode)
	var parseErr error
	r.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &r, nil
}
