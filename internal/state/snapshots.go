// ABOUTME: Typed snapshot accessors over the state store.
// ABOUTME: Current workout, derived pattern, last meal time, recovery tracking.
package state

import (
	"time"

	"github.com/prometheusfit/fuelcast/internal/models"
)

// CurrentWorkout returns the in-progress workout snapshot, or nil if none.
func (s *Store) CurrentWorkout() (*models.WorkoutRecord, error) {
	var w models.WorkoutRecord
	ok, err := s.get(keyCurrentWorkout, &w)
	if err != nil || !ok {
		return nil, err
	}
	return &w, nil
}

// SetCurrentWorkout persists the in-progress workout snapshot, overwriting
// any previous one.
func (s *Store) SetCurrentWorkout(w *models.WorkoutRecord) error {
	return s.set(keyCurrentWorkout, w)
}

// ClearCurrentWorkout removes the in-progress workout snapshot.
func (s *Store) ClearCurrentWorkout() error {
	return s.del(keyCurrentWorkout)
}

// Pattern returns the latest derived workout pattern, or nil if none has
// been computed.
func (s *Store) Pattern() (*models.WorkoutPattern, error) {
	var p models.WorkoutPattern
	ok, err := s.get(keyPattern, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// SetPattern replaces the persisted pattern wholesale.
func (s *Store) SetPattern(p *models.WorkoutPattern) error {
	return s.set(keyPattern, p)
}

// ClearPattern removes the persisted pattern.
func (s *Store) ClearPattern() error {
	return s.del(keyPattern)
}

// LastMealAt returns the most recent recorded meal time, or nil.
func (s *Store) LastMealAt() (*time.Time, error) {
	var t time.Time
	ok, err := s.get(keyLastMeal, &t)
	if err != nil || !ok {
		return nil, err
	}
	return &t, nil
}

// SetLastMealAt records the most recent meal time.
func (s *Store) SetLastMealAt(t time.Time) error {
	return s.set(keyLastMeal, t)
}

// Recovery returns the active post-workout recovery snapshot, or nil.
func (s *Store) Recovery() (*models.RecoveryState, error) {
	var r models.RecoveryState
	ok, err := s.get(keyRecovery, &r)
	if err != nil || !ok {
		return nil, err
	}
	return &r, nil
}

// SetRecovery persists the recovery snapshot.
func (s *Store) SetRecovery(r *models.RecoveryState) error {
	return s.set(keyRecovery, r)
}

// ClearRecovery removes the recovery snapshot.
func (s *Store) ClearRecovery() error {
	return s.del(keyRecovery)
}
