// ABOUTME: ActivityRecord CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for logged activities.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

const activityColumns = `id, category, value, recorded_at, note, duration_minutes, created_at, updated_at`

// CreateActivity stores a new activity record.
func (d *DB) CreateActivity(a *models.ActivityRecord) error {
	if a.Value < 0 || a.DurationMinutes < 0 {
		return fmt.Errorf("create activity: value and duration must be non-negative")
	}
	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		a.ID.String(),
		string(a.Category),
		a.Value,
		formatTime(a.RecordedAt),
		a.Note,
		a.DurationMinutes,
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// GetActivity retrieves an activity by ID or ID prefix.
func (d *DB) GetActivity(idOrPrefix string) (*models.ActivityRecord, error) {
	id, err := d.resolveID("activities", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	return scanActivity(d.db.QueryRow(query, id))
}

// UpdateActivity overwrites the mutable fields of an existing activity.
func (d *DB) UpdateActivity(a *models.ActivityRecord) error {
	if a.Value < 0 || a.DurationMinutes < 0 {
		return fmt.Errorf("update activity: value and duration must be non-negative")
	}
	a.UpdatedAt = time.Now()

	result, err := d.db.Exec(`
		UPDATE activities
		SET category = ?, value = ?, recorded_at = ?, note = ?, duration_minutes = ?, updated_at = ?
		WHERE id = ?`,
		string(a.Category),
		a.Value,
		formatTime(a.RecordedAt),
		a.Note,
		a.DurationMinutes,
		formatTime(a.UpdatedAt),
		a.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update activity: %w: %s", ErrNotFound, a.ID)
	}
	return nil
}

// ListActivities retrieves activities matching filter.
// Results are sorted by RecordedAt descending (most recent first).
func (d *DB) ListActivities(filter ActivityFilter) ([]*models.ActivityRecord, error) {
	var where []string
	var args []interface{}

	if filter.Category != nil {
		where = append(where, "category = ?")
		args = append(args, string(*filter.Category))
	}
	if !filter.From.IsZero() {
		where = append(where, "recorded_at >= ?")
		args = append(args, formatTime(filter.From))
	}
	if !filter.To.IsZero() {
		where = append(where, "recorded_at < ?")
		args = append(args, formatTime(filter.To))
	}

	query := `SELECT ` + activityColumns + ` FROM activities`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY recorded_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.ActivityRecord
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

// DeleteActivity removes an activity by ID or prefix.
func (d *DB) DeleteActivity(idOrPrefix string) error {
	id, err := d.resolveID("activities", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete activity: %w: %s", ErrNotFound, idOrPrefix)
	}

	return nil
}

// SumActivities totals the values of one category within [from, to).
func (d *DB) SumActivities(category models.ActivityCategory, from, to time.Time) (int, error) {
	var total sql.NullInt64
	err := d.db.QueryRow(`
		SELECT SUM(value) FROM activities
		WHERE category = ? AND recorded_at >= ? AND recorded_at < ?`,
		string(category), formatTime(from), formatTime(to),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum activities: %w", err)
	}
	return int(total.Int64), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanActivity scans a single row into an ActivityRecord.
func scanActivity(row rowScanner) (*models.ActivityRecord, error) {
	var a models.ActivityRecord
	var idStr, category, recordedAt, createdAt, updatedAt string

	err := row.Scan(&idStr, &category, &a.Value, &recordedAt, &a.Note, &a.DurationMinutes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}

	a.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID in database: %w", err)
	}
	a.Category = models.ActivityCategory(category)
	a.RecordedAt = parseTime(recordedAt)
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)

	return &a, nil
}
