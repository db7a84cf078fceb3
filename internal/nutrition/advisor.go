// ABOUTME: Pre-workout nutrition advisor: classifies predicted workout timing
// ABOUTME: plus meal recency into an action, urgency, macros, and a message.
package nutrition

import (
	"fmt"
	"math"
	"time"

	"github.com/prometheusfit/fuelcast/internal/models"
)

// Predictor supplies the pattern store's projections onto today.
type Predictor interface {
	InProgress() (bool, error)
	PredictedWorkoutTimeToday() (*time.Time, error)
	HoursUntilPredictedWorkout() (*float64, error)
	TodayPredictionConfidence() (float64, error)
}

// State persists the advisor's restart-surviving inputs and snapshots.
type State interface {
	LastMealAt() (*time.Time, error)
	SetLastMealAt(t time.Time) error
	Recovery() (*models.RecoveryState, error)
	SetRecovery(r *models.RecoveryState) error
	ClearRecovery() error
}

// Advisor turns workout predictions and meal timing into recommendations.
// All accessors return value snapshots; callers cannot mutate internal state.
type Advisor struct {
	predictor    Predictor
	state        State
	bodyWeightKg float64
	windows      Windows
	now          func() time.Time
}

// NewAdvisor creates an advisor for the given body weight and windows.
func NewAdvisor(predictor Predictor, state State, bodyWeightKg float64, windows Windows) *Advisor {
	return &Advisor{
		predictor:    predictor,
		state:        state,
		bodyWeightKg: bodyWeightKg,
		windows:      windows,
		now:          time.Now,
	}
}

// RecordMealTime updates the last-meal instant used for pre-workout timing.
func (a *Advisor) RecordMealTime(at time.Time) error {
	return a.state.SetLastMealAt(at)
}

// LogMeal records a meal: updates last-meal time and, when recovery tracking
// is active, feeds the meal's macros into the recovery totals.
func (a *Advisor) LogMeal(m *models.MealEntry) error {
	if err := a.state.SetLastMealAt(m.LoggedAt); err != nil {
		return fmt.Errorf("record meal time: %w", err)
	}

	recovery, err := a.state.Recovery()
	if err != nil {
		return err
	}
	if recovery == nil || m.LoggedAt.Before(recovery.WorkoutEndedAt) {
		return nil
	}
	_, err = a.RecordRecoveryIntake(m.ProteinG, m.CarbsG)
	return err
}

// PreWorkoutState recomputes and returns the current recommendation.
func (a *Advisor) PreWorkoutState() (*models.PreWorkoutState, error) {
	in := preInputs{bodyWeightKg: a.bodyWeightKg}
	now := a.now()

	inProgress, err := a.predictor.InProgress()
	if err != nil {
		return nil, err
	}
	in.inProgress = inProgress

	in.predictedAt, err = a.predictor.PredictedWorkoutTimeToday()
	if err != nil {
		return nil, err
	}
	in.hoursUntil, err = a.predictor.HoursUntilPredictedWorkout()
	if err != nil {
		return nil, err
	}
	in.confidence, err = a.predictor.TodayPredictionConfidence()
	if err != nil {
		return nil, err
	}

	in.lastMealAt, err = a.state.LastMealAt()
	if err != nil {
		return nil, err
	}
	if in.lastMealAt != nil {
		h := now.Sub(*in.lastMealAt).Hours()
		if h >= 0 {
			in.hoursSinceMeal = &h
		}
	}

	st := classifyPreWorkout(in)
	return &st, nil
}

// preInputs are the resolved inputs to the stateless classification.
type preInputs struct {
	inProgress     bool
	predictedAt    *time.Time
	hoursUntil     *float64
	lastMealAt     *time.Time
	hoursSinceMeal *float64
	confidence     float64
	bodyWeightKg   float64
}

const (
	// wellFueledMealAge: a meal younger than this can still count as fuel.
	wellFueledMealAge = 2.5
	// wellFueledGapMin/Max: acceptable meal-to-workout gap in hours.
	wellFueledGapMin = 1.5
	wellFueledGapMax = 4.0
	// needsFoodAfter: hours since last meal beyond which food is needed.
	needsFoodAfter = 3.5
)

// classifyPreWorkout is a pure function of its inputs; missing optional
// inputs degrade to the "no data" branch of each rule.
func classifyPreWorkout(in preInputs) models.PreWorkoutState {
	st := models.PreWorkoutState{
		PredictedWorkoutAt: in.predictedAt,
		HoursUntilWorkout:  in.hoursUntil,
		LastMealAt:         in.lastMealAt,
		HoursSinceLastMeal: in.hoursSinceMeal,
		Confidence:         in.confidence,
	}

	// Special cases first, highest priority.
	if in.inProgress {
		st.Action = models.ActionWorkoutInProgress
		st.Urgency = models.UrgencyNone
		st.Message = "Workout in progress — focus on hydration."
		return st
	}
	if in.hoursUntil == nil {
		st.Action = models.ActionNoWorkoutPredicted
		st.Urgency = models.UrgencyNone
		st.Message = "No workout predicted today."
		return st
	}

	hoursUntil := *in.hoursUntil
	st.Protein, st.Carbs, st.Fat = PreWorkoutMacros(hoursUntil, in.bodyWeightKg)

	// Well-fueled override: a recent meal that lands the right distance
	// before the predicted workout bypasses the threshold table.
	if in.hoursSinceMeal != nil && *in.hoursSinceMeal < wellFueledMealAge {
		gap := hoursUntil + (wellFueledMealAge - *in.hoursSinceMeal)
		if gap >= wellFueledGapMin && gap <= wellFueledGapMax {
			st.Action = models.ActionWellFueled
			st.Urgency = models.UrgencyNone
			st.Message = fmt.Sprintf("You ate %s ago — well fueled for the workout in %s.",
				formatHours(*in.hoursSinceMeal), formatHours(hoursUntil))
			return st
		}
	}

	st.Action = classifyByThreshold(hoursUntil)
	st.Urgency = deriveUrgency(st.Action, hoursUntil, in.hoursSinceMeal)
	st.Message = actionMessage(st.Action, hoursUntil, in.hoursSinceMeal)
	return st
}

// classifyByThreshold applies the descending hour thresholds, first match
// wins. The >3.5 and >2.0 bands both map to full_meal_now; the boundary
// still changes message wording.
func classifyByThreshold(hoursUntil float64) models.FuelingAction {
	switch {
	case hoursUntil > 3.5:
		return models.ActionFullMealNow
	case hoursUntil > 2.0:
		return models.ActionFullMealNow
	case hoursUntil > 0.75:
		return models.ActionLightMealNow
	case hoursUntil > 0.3:
		return models.ActionQuickCarbsOnly
	default:
		return models.ActionTooLateToEat
	}
}

func deriveUrgency(action models.FuelingAction, hoursUntil float64, hoursSinceMeal *float64) models.Urgency {
	needsFood := hoursSinceMeal == nil || *hoursSinceMeal > needsFoodAfter
	if !needsFood {
		return models.UrgencyLow
	}

	switch action {
	case models.ActionTooLateToEat:
		return models.UrgencyCritical
	case models.ActionQuickCarbsOnly:
		return models.UrgencyHigh
	case models.ActionLightMealNow:
		return models.UrgencyMedium
	case models.ActionFullMealNow:
		if hoursUntil < 3 {
			return models.UrgencyMedium
		}
		return models.UrgencyLow
	default:
		return models.UrgencyLow
	}
}

func actionMessage(action models.FuelingAction, hoursUntil float64, hoursSinceMeal *float64) string {
	until := formatHours(hoursUntil)

	var msg string
	switch action {
	case models.ActionFullMealNow:
		if hoursUntil > 3.5 {
			msg = fmt.Sprintf("Next workout in about %s. Plenty of time for a full meal.", until)
		} else {
			msg = fmt.Sprintf("Workout in %s. Eat a full meal now so it can digest.", until)
		}
	case models.ActionLightMealNow:
		msg = fmt.Sprintf("Workout in %s. Keep it light: easy carbs plus some protein.", until)
	case models.ActionQuickCarbsOnly:
		msg = fmt.Sprintf("Workout in %s. Quick carbs only (banana, juice, gel).", until)
	case models.ActionTooLateToEat:
		msg = fmt.Sprintf("Workout in %s. Too late to eat — train now, refuel after.", until)
	}

	if hoursSinceMeal != nil {
		msg += fmt.Sprintf(" Last meal %s ago.", formatHours(*hoursSinceMeal))
	}
	return msg
}

// formatHours renders a fractional hour count as "1h 30min" / "45min".
func formatHours(hours float64) string {
	total := int(math.Round(hours * 60.0))
	if total < 0 {
		total = 0
	}
	h, m := total/60, total%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dmin", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dmin", m)
	}
}
