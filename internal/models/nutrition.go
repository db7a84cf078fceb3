// ABOUTME: Nutrition-timing state models: fueling actions, urgency levels,
// ABOUTME: pre-workout recommendation snapshot, and recovery-window snapshot.
package models

import "time"

// FuelingAction is the recommended pre-workout eating action.
type FuelingAction string

const (
	ActionNoWorkoutPredicted FuelingAction = "no_workout_predicted"
	ActionWorkoutInProgress  FuelingAction = "workout_in_progress"
	ActionWellFueled         FuelingAction = "well_fueled"
	ActionFullMealNow        FuelingAction = "full_meal_now"
	ActionLightMealNow       FuelingAction = "light_meal_now"
	ActionQuickCarbsOnly     FuelingAction = "quick_carbs_only"
	ActionTooLateToEat       FuelingAction = "too_late_to_eat"
)

// Urgency grades how pressing a recommendation is.
type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// RecoveryPhase is the post-workout feeding-window phase.
type RecoveryPhase string

const (
	PhaseImmediate RecoveryPhase = "immediate"
	PhaseOptimal   RecoveryPhase = "optimal"
	PhaseExtended  RecoveryPhase = "extended"
	PhaseClosed    RecoveryPhase = "closed"
)

// MacroRange is an inclusive gram range for one macronutrient.
type MacroRange struct {
	MinGrams int `json:"min_grams"`
	MaxGrams int `json:"max_grams"`
}

// PreWorkoutState is the advisor's pre-workout recommendation snapshot.
// Recomputed on demand; optional inputs that were unavailable stay nil.
type PreWorkoutState struct {
	PredictedWorkoutAt *time.Time    `json:"predicted_workout_at,omitempty"`
	HoursUntilWorkout  *float64      `json:"hours_until_workout,omitempty"`
	LastMealAt         *time.Time    `json:"last_meal_at,omitempty"`
	HoursSinceLastMeal *float64      `json:"hours_since_last_meal,omitempty"`
	Action             FuelingAction `json:"action"`
	Protein            MacroRange    `json:"protein"`
	Carbs              MacroRange    `json:"carbs"`
	Fat                MacroRange    `json:"fat"`
	Confidence         float64       `json:"confidence"`
	Message            string        `json:"message"`
	Urgency            Urgency       `json:"urgency"`
}

// RecoveryState tracks protein/carb intake against a time-decaying target
// after a workout ends.
type RecoveryState struct {
	WorkoutEndedAt   time.Time     `json:"workout_ended_at"`
	MinutesSince     int           `json:"minutes_since"`
	WasFasted        bool          `json:"was_fasted"`
	ProteinConsumedG float64       `json:"protein_consumed_g"`
	CarbsConsumedG   float64       `json:"carbs_consumed_g"`
	ProteinTargetG   float64       `json:"protein_target_g"`
	CarbTargetG      float64       `json:"carb_target_g"`
	Phase            RecoveryPhase `json:"phase"`
	Urgency          Urgency       `json:"urgency"`
	Message          string        `json:"message"`
}

// TargetMet reports whether at least 80% of the protein target is in.
func (r *RecoveryState) TargetMet() bool {
	return r.ProteinTargetG > 0 && r.ProteinConsumedG >= 0.8*r.ProteinTargetG
}
