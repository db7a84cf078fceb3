// ABOUTME: Meal log CRUD operations for SQLite storage.
// ABOUTME: Supplies last-meal timing and recovery intake data.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheusfit/fuelcast/internal/models"
)

// LogMeal stores a new meal entry.
func (d *DB) LogMeal(m *models.MealEntry) error {
	query := `
		INSERT INTO meal_log (id, logged_at, protein_g, carbs_g, fat_g, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.LoggedAt.Format(time.RFC3339),
		m.ProteinG,
		m.CarbsG,
		m.FatG,
		m.Notes,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("log meal: %w", err)
	}
	return nil
}

// ListMeals retrieves meals ordered most-recent-first. limit <= 0 means all.
func (d *DB) ListMeals(limit int) ([]*models.MealEntry, error) {
	query := `
		SELECT id, logged_at, protein_g, carbs_g, fat_g, notes, created_at
		FROM meal_log
		ORDER BY logged_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var meals []*models.MealEntry
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

// LatestMeal returns the most recently logged meal, or nil when the log is
// empty.
func (d *DB) LatestMeal() (*models.MealEntry, error) {
	meals, err := d.ListMeals(1)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return meals[0], nil
}

// MacrosSince sums protein and carbs logged at or after the given instant.
func (d *DB) MacrosSince(t time.Time) (proteinG, carbsG float64, err error) {
	query := `
		SELECT COALESCE(SUM(protein_g), 0), COALESCE(SUM(carbs_g), 0)
		FROM meal_log
		WHERE logged_at >= ?
	`
	if err := d.db.QueryRow(query, t.Format(time.RFC3339)).Scan(&proteinG, &carbsG); err != nil {
		return 0, 0, fmt.Errorf("sum macros: %w", err)
	}
	return proteinG, carbsG, nil
}

func scanMeal(rows *sql.Rows) (*models.MealEntry, error) {
	var m models.MealEntry
	var idStr, loggedAt, createdAt string
	var notes sql.NullString

	err := rows.Scan(&idStr, &loggedAt, &m.ProteinG, &m.CarbsG, &m.FatG, &notes, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan meal: %w", err)
	}

	m.ID, _ = uuid.Parse(idStr)
	m.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		m.Notes = &notes.String
	}

	return &m, nil
}
