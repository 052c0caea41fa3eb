package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gosteel/internal/design"
)

// ErrNotFound is returned when no design has the requested ID
var ErrNotFound = errors.New("design not found")

// Record is one stored design
type Record struct {
	ID            string    `json:"id" yaml:"id"`
	Kind          string    `json:"kind" yaml:"kind"`
	Name          string    `json:"name,omitempty" yaml:"name,omitempty"`
	Project       string    `json:"project,omitempty" yaml:"project,omitempty"`
	Span          float64   `json:"span" yaml:"span"`
	Moment        float64   `json:"moment" yaml:"moment"`
	LoadType      string    `json:"load_type" yaml:"load_type"`
	SteelGrade    string    `json:"steel_grade" yaml:"steel_grade"`
	Code          string    `json:"code" yaml:"code"`
	SectionName   string    `json:"section_name" yaml:"section_name"`
	SectionType   string    `json:"section_type" yaml:"section_type"`
	OverallStatus string    `json:"overall_status" yaml:"overall_status"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`

	ResultJSON string `json:"-" yaml:"-"`
}

// NewRecord summarises a design result for storage
func NewRecord(kind, project string, r *design.Result) (Record, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return Record{}, fmt.Errorf("encode result: %w", err)
	}
	return Record{
		ID:            uuid.NewString(),
		Kind:          kind,
		Name:          r.Name,
		Project:       project,
		Span:          r.Span,
		Moment:        r.Moment,
		LoadType:      r.LoadType.String(),
		SteelGrade:    r.SteelGrade,
		Code:          r.Code.String(),
		SectionName:   r.SectionProperties.Name,
		SectionType:   r.SectionProperties.Type.String(),
		OverallStatus: r.OverallStatus.String(),
		CreatedAt:     time.Now().UTC(),
		ResultJSON:    string(data),
	}, nil
}

// Result decodes the stored design result
func (rec Record) Result() (*design.Result, error) {
	var r design.Result
	if err := json.Unmarshal([]byte(rec.ResultJSON), &r); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", rec.ID, err)
	}
	return &r, nil
}

// DesignRepo handles persistence for Record
type DesignRepo struct{}

// Insert stores a record
func (r *DesignRepo) Insert(ctx context.Context, db *sql.DB, rec Record) error {
	const q = `INSERT INTO designs (id, kind, name, project, span, moment, load_type, steel_grade, code,
	section_name, section_type, overall_status, result_json, created_at_unix)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, q,
		rec.ID, rec.Kind, rec.Name, rec.Project, rec.Span, rec.Moment, rec.LoadType, rec.SteelGrade, rec.Code,
		rec.SectionName, rec.SectionType, rec.OverallStatus, rec.ResultJSON, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert design: %w", err)
	}
	return nil
}

const selectColumns = `SELECT id, kind, name, project, span, moment, load_type, steel_grade, code,
	section_name, section_type, overall_status, result_json, created_at_unix FROM designs`

func scanRecord(s interface{ Scan(...any) error }) (Record, error) {
	var rec Record
	var created int64
	err := s.Scan(&rec.ID, &rec.Kind, &rec.Name, &rec.Project, &rec.Span, &rec.Moment, &rec.LoadType,
		&rec.SteelGrade, &rec.Code, &rec.SectionName, &rec.SectionType, &rec.OverallStatus, &rec.ResultJSON, &created)
	rec.CreatedAt = time.Unix(created, 0).UTC()
	return rec, err
}

// Get returns the record with the given ID
func (r *DesignRepo) Get(ctx context.Context, db *sql.DB, id string) (Record, error) {
	rec, err := scanRecord(db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get design: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. An empty project
// matches every project; limit <= 0 means no limit.
func (r *DesignRepo) List(ctx context.Context, db *sql.DB, project string, limit int) ([]Record, error) {
	q := selectColumns + ` WHERE (? = '' OR project = ?) ORDER BY created_at_unix DESC, rowid DESC`
	args := []any{project, project}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan design: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete removes the record with the given ID
func (r *DesignRepo) Delete(ctx context.Context, db *sql.DB, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
