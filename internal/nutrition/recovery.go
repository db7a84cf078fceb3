// ABOUTME: Post-workout recovery tracking: feeding-window phases and intake
// ABOUTME: against time-decaying protein/carb targets.
package nutrition

import (
	"fmt"
	"math"
	"time"

	"github.com/prometheusfit/fuelcast/internal/models"
)

// StartRecovery begins post-workout tracking for a session that just ended,
// superseding any previous tracking.
func (a *Advisor) StartRecovery(endedAt time.Time, fasted bool) (*models.RecoveryState, error) {
	r := &models.RecoveryState{
		WorkoutEndedAt: endedAt,
		WasFasted:      fasted,
	}
	a.refreshRecovery(r)
	if err := a.state.SetRecovery(r); err != nil {
		return nil, fmt.Errorf("persist recovery state: %w", err)
	}
	return r, nil
}

// RecoveryState returns the current recovery snapshot recomputed for "now",
// or nil when no tracking is active.
func (a *Advisor) RecoveryState() (*models.RecoveryState, error) {
	r, err := a.state.Recovery()
	if err != nil || r == nil {
		return nil, err
	}
	a.refreshRecovery(r)
	return r, nil
}

// RecordRecoveryIntake adds newly consumed protein and carbs (grams, deltas)
// to the active tracking and returns the refreshed snapshot. No-op returning
// nil when no tracking is active.
func (a *Advisor) RecordRecoveryIntake(proteinG, carbsG float64) (*models.RecoveryState, error) {
	r, err := a.state.Recovery()
	if err != nil || r == nil {
		return nil, err
	}

	r.ProteinConsumedG += proteinG
	r.CarbsConsumedG += carbsG
	a.refreshRecovery(r)

	if err := a.state.SetRecovery(r); err != nil {
		return nil, fmt.Errorf("persist recovery state: %w", err)
	}
	return r, nil
}

// ClearRecovery stops post-workout tracking.
func (a *Advisor) ClearRecovery() error {
	return a.state.ClearRecovery()
}

// refreshRecovery recomputes the time-dependent fields in place.
func (a *Advisor) refreshRecovery(r *models.RecoveryState) {
	now := a.now()
	r.MinutesSince = int(math.Floor(now.Sub(r.WorkoutEndedAt).Minutes()))
	if r.MinutesSince < 0 {
		r.MinutesSince = 0
	}
	r.Phase = a.windows.Phase(r.MinutesSince)
	r.ProteinTargetG, r.CarbTargetG = a.windows.RecoveryTargets(r.MinutesSince, a.bodyWeightKg, r.WasFasted)
	r.Urgency = recoveryUrgency(r)
	r.Message = recoveryMessage(r)
}

func recoveryUrgency(r *models.RecoveryState) models.Urgency {
	if r.Phase == models.PhaseClosed {
		return models.UrgencyNone
	}
	if r.TargetMet() {
		return models.UrgencyNone
	}
	switch r.Phase {
	case models.PhaseImmediate:
		if r.WasFasted {
			return models.UrgencyCritical
		}
		return models.UrgencyHigh
	case models.PhaseOptimal:
		return models.UrgencyMedium
	default:
		return models.UrgencyLow
	}
}

func recoveryMessage(r *models.RecoveryState) string {
	since := formatHours(float64(r.MinutesSince) / 60.0)

	if r.Phase == models.PhaseClosed {
		return "Recovery window closed."
	}
	if r.TargetMet() {
		return fmt.Sprintf("Recovery target hit — %.0fg protein logged.", r.ProteinConsumedG)
	}

	switch r.Phase {
	case models.PhaseImmediate:
		if r.WasFasted {
			return fmt.Sprintf("Fasted session ended %s ago — get protein in now.", since)
		}
		return fmt.Sprintf("Workout ended %s ago. Prioritize protein and carbs now.", since)
	case models.PhaseOptimal:
		return fmt.Sprintf("%s since your workout. Still a great window to eat.", since)
	default:
		return fmt.Sprintf("%s since your workout. Eat soon to support recovery.", since)
	}
}
