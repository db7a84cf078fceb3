// ABOUTME: Repository interface for fuelcast relational storage.
// ABOUTME: Defines the contract for workout history and meal log operations.
package storage

import (
	"time"

	"github.com/prometheusfit/fuelcast/internal/models"
)

// Repository defines the relational storage interface.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Workout history
	AppendWorkout(w *models.WorkoutRecord) error
	ListWorkouts(limit int) ([]*models.WorkoutRecord, error)
	CountWorkouts() (int, error)

	// Meal log
	LogMeal(m *models.MealEntry) error
	ListMeals(limit int) ([]*models.MealEntry, error)
	LatestMeal() (*models.MealEntry, error)
	MacrosSince(t time.Time) (proteinG, carbsG float64, err error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
