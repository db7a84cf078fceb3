// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for the bounded workout history and the meal log.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workout_history (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		ended_at DATETIME,
		day_of_week INTEGER NOT NULL,
		hour_of_day INTEGER NOT NULL,
		minute_of_hour INTEGER NOT NULL,
		duration_minutes INTEGER,
		workout_type TEXT,
		was_fasted INTEGER NOT NULL DEFAULT 0,
		pre_workout_meal_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS meal_log (
		id TEXT PRIMARY KEY,
		logged_at DATETIME NOT NULL,
		protein_g REAL NOT NULL DEFAULT 0,
		carbs_g REAL NOT NULL DEFAULT 0,
		fat_g REAL NOT NULL DEFAULT 0,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_history_started ON workout_history(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_history_day ON workout_history(day_of_week);
	CREATE INDEX IF NOT EXISTS idx_meals_logged ON meal_log(logged_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
