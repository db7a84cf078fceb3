// ABOUTME: WorkoutRecord model for completed and in-progress workouts.
// ABOUTME: Captures start/end instants plus weekday and time-of-day fields.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// WorkoutRecord represents one workout session. EndedAt and DurationMinutes
// stay nil until the session is finalized with Finalize.
type WorkoutRecord struct {
	ID               uuid.UUID  `json:"id"`
	StartedAt        time.Time  `json:"started_at"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	DayOfWeek        int        `json:"day_of_week"` // ISO: 1 = Monday .. 7 = Sunday
	HourOfDay        int        `json:"hour_of_day"`
	MinuteOfHour     int        `json:"minute_of_hour"`
	DurationMinutes  *int       `json:"duration_minutes,omitempty"`
	WorkoutType      *string    `json:"workout_type,omitempty"`
	WasFasted        bool       `json:"was_fasted"`
	PreWorkoutMealAt *time.Time `json:"pre_workout_meal_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// NewWorkoutRecord creates an in-progress record anchored at startedAt.
func NewWorkoutRecord(startedAt time.Time) *WorkoutRecord {
	return &WorkoutRecord{
		ID:           uuid.New(),
		StartedAt:    startedAt,
		DayOfWeek:    ISOWeekday(startedAt),
		HourOfDay:    startedAt.Hour(),
		MinuteOfHour: startedAt.Minute(),
		CreatedAt:    startedAt,
	}
}

// WithType sets the freeform workout type tag.
func (w *WorkoutRecord) WithType(workoutType string) *WorkoutRecord {
	w.WorkoutType = &workoutType
	return w
}

// WithFasted marks the session as trained fasted.
func (w *WorkoutRecord) WithFasted(fasted bool) *WorkoutRecord {
	w.WasFasted = fasted
	return w
}

// WithPreWorkoutMeal records when the pre-session meal was eaten.
func (w *WorkoutRecord) WithPreWorkoutMeal(t time.Time) *WorkoutRecord {
	w.PreWorkoutMealAt = &t
	return w
}

// Finalize closes the session at endedAt, deriving DurationMinutes from the
// wall-clock delta.
func (w *WorkoutRecord) Finalize(endedAt time.Time) *WorkoutRecord {
	minutes := int(math.Round(endedAt.Sub(w.StartedAt).Minutes()))
	w.EndedAt = &endedAt
	w.DurationMinutes = &minutes
	return w
}

// HourFloat returns the time of day as a fractional hour (18:15 -> 18.25).
func (w *WorkoutRecord) HourFloat() float64 {
	return float64(w.HourOfDay) + float64(w.MinuteOfHour)/60.0
}

// ISOWeekday maps a time to ISO weekday numbering (Monday=1 .. Sunday=7).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
