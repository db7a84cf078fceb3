// ABOUTME: Pattern store: workout lifecycle, history ownership, and the
// ABOUTME: derived-pattern projections used by the nutrition advisor.
package pattern

import (
	"fmt"
	"time"

	"github.com/prometheusfit/fuelcast/internal/models"
)

// History is the bounded relational workout history the store appends to.
type History interface {
	AppendWorkout(w *models.WorkoutRecord) error
	ListWorkouts(limit int) ([]*models.WorkoutRecord, error)
}

// State persists the in-progress workout and the derived pattern across
// process restarts.
type State interface {
	CurrentWorkout() (*models.WorkoutRecord, error)
	SetCurrentWorkout(w *models.WorkoutRecord) error
	ClearCurrentWorkout() error
	Pattern() (*models.WorkoutPattern, error)
	SetPattern(p *models.WorkoutPattern) error
	ClearPattern() error
}

// Store owns the workout history and the single in-progress workout, and
// recomputes the derived pattern on every workout end.
type Store struct {
	history History
	state   State
	now     func() time.Time
}

// NewStore creates a pattern store over the given history and state.
func NewStore(history History, state State) *Store {
	return &Store{
		history: history,
		state:   state,
		now:     time.Now,
	}
}

// StartOptions carries optional fields captured at workout start.
type StartOptions struct {
	WorkoutType      string
	WasFasted        bool
	PreWorkoutMealAt *time.Time
}

// StartWorkout begins a new session, overwriting any stale in-progress
// record. At most one in-progress workout is modeled.
func (s *Store) StartWorkout(opts StartOptions) (*models.WorkoutRecord, error) {
	w := models.NewWorkoutRecord(s.now()).WithFasted(opts.WasFasted)
	if opts.WorkoutType != "" {
		w.WithType(opts.WorkoutType)
	}
	if opts.PreWorkoutMealAt != nil {
		w.WithPreWorkoutMeal(*opts.PreWorkoutMealAt)
	}

	if err := s.state.SetCurrentWorkout(w); err != nil {
		return nil, fmt.Errorf("persist current workout: %w", err)
	}
	return w, nil
}

// EndWorkout finalizes the in-progress session, appends it to history, and
// recomputes the pattern. Returns (nil, nil) when no workout is in progress.
func (s *Store) EndWorkout() (*models.WorkoutRecord, error) {
	current, err := s.state.CurrentWorkout()
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	current.Finalize(s.now())

	if err := s.history.AppendWorkout(current); err != nil {
		return nil, fmt.Errorf("append to history: %w", err)
	}
	if err := s.state.ClearCurrentWorkout(); err != nil {
		return nil, fmt.Errorf("clear current workout: %w", err)
	}
	if err := s.Recompute(); err != nil {
		return nil, err
	}

	return current, nil
}

// CancelWorkout discards the in-progress session without touching history or
// pattern. Safe to call when nothing is in progress.
func (s *Store) CancelWorkout() error {
	return s.state.ClearCurrentWorkout()
}

// InProgress reports whether a workout is currently in progress.
func (s *Store) InProgress() (bool, error) {
	current, err := s.state.CurrentWorkout()
	if err != nil {
		return false, err
	}
	return current != nil, nil
}

// CurrentWorkout returns the in-progress record, or nil.
func (s *Store) CurrentWorkout() (*models.WorkoutRecord, error) {
	return s.state.CurrentWorkout()
}

// Recompute rebuilds the pattern in full from the retained history and
// persists it, replacing the previous one. With fewer than three workouts
// the pattern is cleared rather than left stale.
func (s *Store) Recompute() error {
	history, err := s.history.ListWorkouts(0)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	p := Compute(history, s.now())
	if p == nil {
		if err := s.state.ClearPattern(); err != nil {
			return fmt.Errorf("clear pattern: %w", err)
		}
		return nil
	}
	if err := s.state.SetPattern(p); err != nil {
		return fmt.Errorf("persist pattern: %w", err)
	}
	return nil
}

// Pattern returns the latest derived pattern, or nil when absent.
func (s *Store) Pattern() (*models.WorkoutPattern, error) {
	return s.state.Pattern()
}

// TodayPattern returns the DayPattern for today's weekday, or nil.
func (s *Store) TodayPattern() (*models.DayPattern, error) {
	p, err := s.state.Pattern()
	if err != nil {
		return nil, err
	}
	dp, ok := p.DayPatternFor(models.ISOWeekday(s.now()))
	if !ok {
		return nil, nil
	}
	return &dp, nil
}

// PredictedWorkoutTimeToday returns today's predicted workout instant, or
// nil when today's weekday has no pattern. The instant is returned even when
// it has already passed.
func (s *Store) PredictedWorkoutTimeToday() (*time.Time, error) {
	p, err := s.state.Pattern()
	if err != nil || p == nil {
		return nil, err
	}
	return PredictToday(p, s.now()), nil
}

// HoursUntilPredictedWorkout returns the hours until today's predicted
// workout, or nil when there is no prediction or it has already passed.
func (s *Store) HoursUntilPredictedWorkout() (*float64, error) {
	predicted, err := s.PredictedWorkoutTimeToday()
	if err != nil || predicted == nil {
		return nil, err
	}
	now := s.now()
	if predicted.Before(now) {
		return nil, nil
	}
	hours := predicted.Sub(now).Hours()
	return &hours, nil
}

// TodayPredictionConfidence returns today's confidence, 0 when absent.
func (s *Store) TodayPredictionConfidence() (float64, error) {
	dp, err := s.TodayPattern()
	if err != nil || dp == nil {
		return 0, err
	}
	return dp.Confidence, nil
}

// likelyConfidenceFloor is the confidence below which a day pattern is not
// treated as an expected workout day.
const likelyConfidenceFloor = 0.3

// IsWorkoutLikelyToday reports whether today's pattern exists with enough
// confidence to expect a session.
func (s *Store) IsWorkoutLikelyToday() (bool, error) {
	dp, err := s.TodayPattern()
	if err != nil || dp == nil {
		return false, err
	}
	return dp.Confidence >= likelyConfidenceFloor, nil
}
