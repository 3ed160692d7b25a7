// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for activities, sessions, and samples.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		value INTEGER NOT NULL CHECK (value >= 0),
		recorded_at TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL DEFAULT 0 CHECK (duration_minutes >= 0),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		activity_type TEXT NOT NULL,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS samples (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		sample_type TEXT NOT NULL,
		float_value REAL,
		int_value INTEGER,
		recorded_at TEXT NOT NULL,
		FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_activities_recorded ON activities(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_activities_category_recorded ON activities(category, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_samples_session ON samples(session_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
