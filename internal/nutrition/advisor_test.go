// ABOUTME: Tests for pre-workout classification: special cases, the threshold
// ABOUTME: table, urgency derivation, and message formatting.
package nutrition

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheusfit/fuelcast/internal/models"
)

// fakePredictor returns canned projections.
type fakePredictor struct {
	inProgress  bool
	predictedAt *time.Time
	hoursUntil  *float64
	confidence  float64
}

func (f *fakePredictor) InProgress() (bool, error) { return f.inProgress, nil }

func (f *fakePredictor) PredictedWorkoutTimeToday() (*time.Time, error) {
	return f.predictedAt, nil
}

func (f *fakePredictor) HoursUntilPredictedWorkout() (*float64, error) {
	return f.hoursUntil, nil
}

func (f *fakePredictor) TodayPredictionConfidence() (float64, error) {
	return f.confidence, nil
}

// fakeState keeps advisor state in memory.
type fakeState struct {
	lastMealAt *time.Time
	recovery   *models.RecoveryState
}

func (f *fakeState) LastMealAt() (*time.Time, error) { return f.lastMealAt, nil }
func (f *fakeState) SetLastMealAt(t time.Time) error {
	f.lastMealAt = &t
	return nil
}
func (f *fakeState) Recovery() (*models.RecoveryState, error) {
	if f.recovery == nil {
		return nil, nil
	}
	copied := *f.recovery
	return &copied, nil
}
func (f *fakeState) SetRecovery(r *models.RecoveryState) error {
	copied := *r
	f.recovery = &copied
	return nil
}
func (f *fakeState) ClearRecovery() error {
	f.recovery = nil
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func TestClassifyWorkoutInProgress(t *testing.T) {
	st := classifyPreWorkout(preInputs{
		inProgress:   true,
		hoursUntil:   floatPtr(0),
		bodyWeightKg: 75,
	})
	if st.Action != models.ActionWorkoutInProgress {
		t.Errorf("Action = %s, want %s", st.Action, models.ActionWorkoutInProgress)
	}
	if st.Urgency != models.UrgencyNone {
		t.Errorf("Urgency = %s, want %s", st.Urgency, models.UrgencyNone)
	}
}

func TestClassifyNoWorkoutPredicted(t *testing.T) {
	st := classifyPreWorkout(preInputs{bodyWeightKg: 75})
	if st.Action != models.ActionNoWorkoutPredicted {
		t.Errorf("Action = %s, want %s", st.Action, models.ActionNoWorkoutPredicted)
	}
	if st.Urgency != models.UrgencyNone {
		t.Errorf("Urgency = %s, want %s", st.Urgency, models.UrgencyNone)
	}
}

func TestClassifyWellFueled(t *testing.T) {
	// Ate 1h ago, workout in 2h: gap of 3.5h lands inside the fueled window.
	st := classifyPreWorkout(preInputs{
		hoursUntil:     floatPtr(2.0),
		hoursSinceMeal: floatPtr(1.0),
		bodyWeightKg:   75,
	})
	if st.Action != models.ActionWellFueled {
		t.Errorf("Action = %s, want %s", st.Action, models.ActionWellFueled)
	}
	if st.Urgency != models.UrgencyNone {
		t.Errorf("Urgency = %s, want %s", st.Urgency, models.UrgencyNone)
	}
}

func TestClassifyWellFueledGapTooLong(t *testing.T) {
	// Ate 12min ago but the workout is 6h away: the fuel will be long gone.
	st := classifyPreWorkout(preInputs{
		hoursUntil:     floatPtr(6.0),
		hoursSinceMeal: floatPtr(0.2),
		bodyWeightKg:   75,
	})
	if st.Action != models.ActionFullMealNow {
		t.Errorf("Action = %s, want %s", st.Action, models.ActionFullMealNow)
	}
}

func TestClassifyThresholdTable(t *testing.T) {
	tests := []struct {
		name           string
		hoursUntil     float64
		hoursSinceMeal *float64
		wantAction     models.FuelingAction
		wantUrgency    models.Urgency
	}{
		{"plenty of time, old meal", 5.0, floatPtr(4.0), models.ActionFullMealNow, models.UrgencyLow},
		{"full meal band, old meal", 2.5, floatPtr(4.0), models.ActionFullMealNow, models.UrgencyMedium},
		{"light meal band, no meal data", 1.5, nil, models.ActionLightMealNow, models.UrgencyMedium},
		{"quick carbs band, no meal data", 0.5, nil, models.ActionQuickCarbsOnly, models.UrgencyHigh},
		{"too late, old meal", 0.2, floatPtr(6.0), models.ActionTooLateToEat, models.UrgencyCritical},
		{"too late exactly at boundary", 0.3, floatPtr(6.0), models.ActionTooLateToEat, models.UrgencyCritical},
		{"recently fed dampens urgency", 0.2, floatPtr(3.0), models.ActionTooLateToEat, models.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := classifyPreWorkout(preInputs{
				hoursUntil:     floatPtr(tt.hoursUntil),
				hoursSinceMeal: tt.hoursSinceMeal,
				bodyWeightKg:   75,
			})
			if st.Action != tt.wantAction {
				t.Errorf("Action = %s, want %s", st.Action, tt.wantAction)
			}
			if st.Urgency != tt.wantUrgency {
				t.Errorf("Urgency = %s, want %s", st.Urgency, tt.wantUrgency)
			}
		})
	}
}

func TestFullMealMessageWording(t *testing.T) {
	relaxed := classifyPreWorkout(preInputs{hoursUntil: floatPtr(5.0), bodyWeightKg: 75})
	if !strings.Contains(relaxed.Message, "Plenty of time") {
		t.Errorf("relaxed message = %q, want the plenty-of-time wording", relaxed.Message)
	}

	pressed := classifyPreWorkout(preInputs{hoursUntil: floatPtr(2.5), bodyWeightKg: 75})
	if !strings.Contains(pressed.Message, "Eat a full meal now") {
		t.Errorf("pressed message = %q, want the eat-now wording", pressed.Message)
	}
}

func TestPreWorkoutMacrosScaleWithWeight(t *testing.T) {
	protein, carbs, fat := PreWorkoutMacros(5.0, 75)
	if protein.MinGrams != 30 || protein.MaxGrams != 38 {
		t.Errorf("protein = %+v, want 30-38g at 75kg", protein)
	}
	if carbs.MinGrams != 75 || carbs.MaxGrams != 113 {
		t.Errorf("carbs = %+v, want 75-113g at 75kg", carbs)
	}
	if fat.MinGrams != 23 || fat.MaxGrams != 30 {
		t.Errorf("fat = %+v, want 23-30g at 75kg", fat)
	}

	protein, carbs, fat = PreWorkoutMacros(0.1, 75)
	if protein.MaxGrams != 0 || carbs.MaxGrams != 0 || fat.MaxGrams != 0 {
		t.Error("macros inside the final band should all be zero")
	}
}

func TestAdvisorPreWorkoutState(t *testing.T) {
	now := time.Date(2025, 3, 10, 16, 0, 0, 0, time.Local)
	predictedAt := now.Add(2 * time.Hour)
	mealAt := now.Add(-time.Hour)

	pred := &fakePredictor{
		predictedAt: &predictedAt,
		hoursUntil:  floatPtr(2.0),
		confidence:  0.8,
	}
	state := &fakeState{lastMealAt: &mealAt}
	a := NewAdvisor(pred, state, 75, DefaultWindows)
	a.now = func() time.Time { return now }

	st, err := a.PreWorkoutState()
	if err != nil {
		t.Fatalf("PreWorkoutState failed: %v", err)
	}
	if st.Action != models.ActionWellFueled {
		t.Errorf("Action = %s, want %s", st.Action, models.ActionWellFueled)
	}
	if st.HoursSinceLastMeal == nil || *st.HoursSinceLastMeal != 1.0 {
		t.Errorf("HoursSinceLastMeal = %v, want 1.0", st.HoursSinceLastMeal)
	}
	if st.Confidence != 0.8 {
		t.Errorf("Confidence = %f, want 0.8", st.Confidence)
	}
}

func TestAdvisorIgnoresFutureMealStamp(t *testing.T) {
	now := time.Date(2025, 3, 10, 16, 0, 0, 0, time.Local)
	mealAt := now.Add(time.Hour)

	pred := &fakePredictor{hoursUntil: floatPtr(2.0)}
	state := &fakeState{lastMealAt: &mealAt}
	a := NewAdvisor(pred, state, 75, DefaultWindows)
	a.now = func() time.Time { return now }

	st, err := a.PreWorkoutState()
	if err != nil {
		t.Fatalf("PreWorkoutState failed: %v", err)
	}
	if st.HoursSinceLastMeal != nil {
		t.Errorf("future meal stamp should not yield hours since, got %f", *st.HoursSinceLastMeal)
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{1.5, "1h 30min"},
		{2.0, "2h"},
		{0.75, "45min"},
		{0, "0min"},
		{-0.5, "0min"},
	}
	for _, tt := range tests {
		if got := formatHours(tt.hours); got != tt.want {
			t.Errorf("formatHours(%f) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
