package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/beeline/internal/db"
)

// ScheduleKind distinguishes how a stored schedule was produced.
type ScheduleKind string

const (
	KindGenerated ScheduleKind = "generated"
	KindRefined   ScheduleKind = "refined"
)

// ScheduleRecord is a stored schedule body with its provenance.
type ScheduleRecord struct {
	ID        string
	Body      string
	Kind      ScheduleKind
	CreatedAt time.Time
}

type ScheduleRepo interface {
	// SaveLast replaces the single last-schedule slot.
	SaveLast(ctx context.Context, body string, generatedAt time.Time) error
	// GetLast returns the last saved schedule, or ErrNotFound if none exists.
	GetLast(ctx context.Context) (string, time.Time, error)
	AppendHistory(ctx context.Context, rec *ScheduleRecord) error
	ListHistory(ctx context.Context, limit int) ([]*ScheduleRecord, error)
}

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) SaveLast(ctx context.Context, body string, generatedAt time.Time) error {
	query := `INSERT OR REPLACE INTO last_schedule (id, body, generated_at) VALUES ('last', ?, ?)`
	_, err := r.db.ExecContext(ctx, query, body, generatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving last schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetLast(ctx context.Context) (string, time.Time, error) {
	query := `SELECT body, generated_at FROM last_schedule WHERE id = 'last'`
	row := r.db.QueryRowContext(ctx, query)

	var body, generatedAtStr string
	if err := row.Scan(&body, &generatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return "", time.Time{}, fmt.Errorf("last schedule: %w", ErrNotFound)
		}
		return "", time.Time{}, fmt.Errorf("scanning last schedule: %w", err)
	}

	generatedAt, err := time.Parse(time.RFC3339, generatedAtStr)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("parsing generated_at: %w", err)
	}
	return body, generatedAt, nil
}

func (r *SQLiteScheduleRepo) AppendHistory(ctx context.Context, rec *ScheduleRecord) error {
	query := `INSERT INTO schedule_history (id, body, kind, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Body,
		string(rec.Kind),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending schedule history: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) ListHistory(ctx context.Context, limit int) ([]*ScheduleRecord, error) {
	// rowid breaks ties between records stored in the same second.
	query := `SELECT id, body, kind, created_at FROM schedule_history
		ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing schedule history: %w", err)
	}
	defer rows.Close()

	var records []*ScheduleRecord
	for rows.Next() {
		var rec ScheduleRecord
		var kindStr, createdAtStr string
		if err := rows.Scan(&rec.ID, &rec.Body, &kindStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning schedule record: %w", err)
		}
		rec.Kind = ScheduleKind(kindStr)
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule history: %w", err)
	}
	return records, nil
}
