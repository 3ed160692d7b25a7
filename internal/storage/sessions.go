// ABOUTME: Session and Sample operations for SQLite storage.
// ABOUTME: Holds device history; samples cascade-delete with their session.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// CreateSession stores a session together with any samples attached to it.
func (d *DB) CreateSession(s *models.Session) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO sessions (id, title, activity_type, started_at, ended_at, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID.String(),
		s.Title,
		s.ActivityType,
		formatTime(s.StartedAt),
		formatTime(s.EndedAt),
		s.Notes,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	for i := range s.Samples {
		s.Samples[i].SessionID = s.ID
		if err := insertSample(tx, &s.Samples[i]); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID or prefix, with its samples.
func (d *DB) GetSession(idOrPrefix string) (*models.Session, error) {
	id, err := d.resolveID("sessions", idOrPrefix)
	if err != nil {
		return nil, err
	}

	s, err := scanSession(d.db.QueryRow(`
		SELECT id, title, activity_type, started_at, ended_at, notes
		FROM sessions WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}

	s.Samples, err = d.ListSamples(s.ID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListSessions returns sessions starting within [from, to), most recent first.
// Zero bounds are open. Samples are not loaded.
func (d *DB) ListSessions(from, to time.Time, limit int) ([]*models.Session, error) {
	query := `
		SELECT id, title, activity_type, started_at, ended_at, notes
		FROM sessions
		WHERE started_at >= ? AND started_at < ?
		ORDER BY started_at DESC
	`
	lo, hi := "", "9999"
	if !from.IsZero() {
		lo = formatTime(from)
	}
	if !to.IsZero() {
		hi = formatTime(to)
	}
	args := []interface{}{lo, hi}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session and its samples.
func (d *DB) DeleteSession(idOrPrefix string) error {
	id, err := d.resolveID("sessions", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	// CASCADE is enabled, so deleting the session deletes its samples
	result, err := d.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete session: %w: %s", ErrNotFound, idOrPrefix)
	}
	return nil
}

// CountSessions returns the number of stored sessions.
func (d *DB) CountSessions() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

// AddSamples stores samples for existing sessions in one transaction.
func (d *DB) AddSamples(samples []models.Sample) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("add samples: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range samples {
		if err := insertSample(tx, &samples[i]); err != nil {
			return fmt.Errorf("add samples: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("add samples: %w", err)
	}
	return nil
}

// ListSamples returns the samples of a session in timestamp order.
func (d *DB) ListSamples(sessionID uuid.UUID) ([]models.Sample, error) {
	rows, err := d.db.Query(`
		SELECT id, session_id, sample_type, float_value, int_value, recorded_at
		FROM samples
		WHERE session_id = ?
		ORDER BY recorded_at ASC`, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		var s models.Sample
		var idStr, sessionStr, sampleType, recordedAt string
		var fv sql.NullFloat64
		var iv sql.NullInt64

		if err := rows.Scan(&idStr, &sessionStr, &sampleType, &fv, &iv, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}

		s.ID, _ = uuid.Parse(idStr)
		s.SessionID, _ = uuid.Parse(sessionStr)
		s.Type = models.SampleType(sampleType)
		s.RecordedAt = parseTime(recordedAt)
		if fv.Valid {
			s.FloatValue = &fv.Float64
		}
		if iv.Valid {
			s.IntValue = &iv.Int64
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

func insertSample(tx *sql.Tx, s *models.Sample) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	_, err := tx.Exec(`
		INSERT INTO samples (id, session_id, sample_type, float_value, int_value, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID.String(),
		s.SessionID.String(),
		string(s.Type),
		s.FloatValue,
		s.IntValue,
		formatTime(s.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("insert sample: %w", err)
	}
	return nil
}

// scanSession scans a single row into a Session struct.
func scanSession(row rowScanner) (*models.Session, error) {
	var s models.Session
	var idStr, startedAt, endedAt string

	err := row.Scan(&idStr, &s.Title, &s.ActivityType, &startedAt, &endedAt, &s.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	s.ID, _ = uuid.Parse(idStr)
	s.StartedAt = parseTime(startedAt)
	s.EndedAt = parseTime(endedAt)
	return &s, nil
}
