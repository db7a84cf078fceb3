// ABOUTME: Bounded workout-history persistence over SQLite.
// ABOUTME: Appends finalized workouts and evicts beyond the 100 most recent.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheusfit/fuelcast/internal/models"
)

// HistoryCap is the maximum number of workouts retained; older records are
// evicted on append.
const HistoryCap = 100

// AppendWorkout stores a finalized workout and trims the history to HistoryCap.
func (d *DB) AppendWorkout(w *models.WorkoutRecord) error {
	query := `
		INSERT INTO workout_history
			(id, started_at, ended_at, day_of_week, hour_of_day, minute_of_hour,
			 duration_minutes, workout_type, was_fasted, pre_workout_meal_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		w.ID.String(),
		w.StartedAt.Format(time.RFC3339),
		formatTimePtr(w.EndedAt),
		w.DayOfWeek,
		w.HourOfDay,
		w.MinuteOfHour,
		w.DurationMinutes,
		w.WorkoutType,
		boolToInt(w.WasFasted),
		formatTimePtr(w.PreWorkoutMealAt),
		w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append workout: %w", err)
	}

	return d.trimHistory()
}

// ListWorkouts retrieves history ordered most-recent-first. limit <= 0 means
// everything retained.
func (d *DB) ListWorkouts(limit int) ([]*models.WorkoutRecord, error) {
	query := `
		SELECT id, started_at, ended_at, day_of_week, hour_of_day, minute_of_hour,
		       duration_minutes, workout_type, was_fasted, pre_workout_meal_at, created_at
		FROM workout_history
		ORDER BY started_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// CountWorkouts returns the number of retained history records.
func (d *DB) CountWorkouts() (int, error) {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM workout_history").Scan(&count); err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	return count, nil
}

// trimHistory evicts everything beyond the HistoryCap most recent records.
func (d *DB) trimHistory() error {
	query := `
		DELETE FROM workout_history
		WHERE id NOT IN (
			SELECT id FROM workout_history ORDER BY started_at DESC LIMIT ?
		)
	`
	if _, err := d.db.Exec(query, HistoryCap); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

// scanWorkouts scans multiple rows into WorkoutRecords.
func scanWorkouts(rows *sql.Rows) ([]*models.WorkoutRecord, error) {
	var workouts []*models.WorkoutRecord

	for rows.Next() {
		var w models.WorkoutRecord
		var idStr, startedAt, createdAt string
		var endedAt, workoutType, preMealAt sql.NullString
		var durationMinutes sql.NullInt64
		var wasFasted int

		err := rows.Scan(&idStr, &startedAt, &endedAt, &w.DayOfWeek, &w.HourOfDay,
			&w.MinuteOfHour, &durationMinutes, &workoutType, &wasFasted, &preMealAt, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}

		w.ID, _ = uuid.Parse(idStr)
		w.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		w.WasFasted = wasFasted != 0
		if endedAt.Valid {
			t, _ := time.Parse(time.RFC3339, endedAt.String)
			w.EndedAt = &t
		}
		if durationMinutes.Valid {
			m := int(durationMinutes.Int64)
			w.DurationMinutes = &m
		}
		if workoutType.Valid {
			w.WorkoutType = &workoutType.String
		}
		if preMealAt.Valid {
			t, _ := time.Parse(time.RFC3339, preMealAt.String)
			w.PreWorkoutMealAt = &t
		}

		workouts = append(workouts, &w)
	}

	return workouts, rows.Err()
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
