// ABOUTME: Nutrition timing table: macro ranges keyed by time-to-workout and
// ABOUTME: body weight, plus post-workout feeding-window thresholds.
package nutrition

import (
	"math"

	"github.com/prometheusfit/fuelcast/internal/models"
)

// Windows holds the feeding-window phase boundaries in minutes since
// workout end.
type Windows struct {
	ImmediateMin int
	OptimalMin   int
	ExtendedMin  int
}

// DefaultWindows are the standard feeding-window boundaries.
var DefaultWindows = Windows{
	ImmediateMin: 30,
	OptimalMin:   120,
	ExtendedMin:  240,
}

// Phase classifies elapsed minutes since workout end into a feeding-window
// phase. Boundaries are inclusive on the lower phase.
func (w Windows) Phase(minutesSince int) models.RecoveryPhase {
	switch {
	case minutesSince <= w.ImmediateMin:
		return models.PhaseImmediate
	case minutesSince <= w.OptimalMin:
		return models.PhaseOptimal
	case minutesSince <= w.ExtendedMin:
		return models.PhaseExtended
	default:
		return models.PhaseClosed
	}
}

// Per-kg macro coefficients for the pre-workout bands.
type macroBand struct {
	proteinMin, proteinMax float64
	carbsMin, carbsMax     float64
	fatMin, fatMax         float64
}

var preWorkoutBands = []struct {
	minHours float64 // exclusive lower bound
	band     macroBand
}{
	{3.5, macroBand{0.40, 0.50, 1.00, 1.50, 0.30, 0.40}},
	{2.0, macroBand{0.30, 0.40, 0.75, 1.00, 0.15, 0.25}},
	{0.75, macroBand{0.15, 0.20, 0.50, 0.75, 0.00, 0.10}},
	{0.3, macroBand{0.00, 0.00, 0.30, 0.50, 0.00, 0.00}},
}

// PreWorkoutMacros returns recommended macro gram ranges for the time
// remaining before a workout, scaled by body weight. Inside the final 0.3h
// (and with no prediction) every range is zero.
func PreWorkoutMacros(hoursUntil, bodyWeightKg float64) (protein, carbs, fat models.MacroRange) {
	for _, b := range preWorkoutBands {
		if hoursUntil > b.minHours {
			return gramRange(b.band.proteinMin, b.band.proteinMax, bodyWeightKg),
				gramRange(b.band.carbsMin, b.band.carbsMax, bodyWeightKg),
				gramRange(b.band.fatMin, b.band.fatMax, bodyWeightKg)
		}
	}
	return models.MacroRange{}, models.MacroRange{}, models.MacroRange{}
}

// Recovery targets decay as the feeding window progresses.
var recoveryPhaseFactor = map[models.RecoveryPhase]float64{
	models.PhaseImmediate: 1.00,
	models.PhaseOptimal:   0.85,
	models.PhaseExtended:  0.70,
	models.PhaseClosed:    0.50,
}

const (
	recoveryProteinPerKg = 0.30
	recoveryCarbsPerKg   = 0.80
	fastedTargetBoost    = 1.25
)

// RecoveryTargets returns the time-decayed protein and carb gram targets for
// the given elapsed minutes since workout end.
func (w Windows) RecoveryTargets(minutesSince int, bodyWeightKg float64, fasted bool) (proteinG, carbsG float64) {
	factor := recoveryPhaseFactor[w.Phase(minutesSince)]
	proteinG = recoveryProteinPerKg * bodyWeightKg * factor
	carbsG = recoveryCarbsPerKg * bodyWeightKg * factor
	if fasted {
		proteinG *= fastedTargetBoost
	}
	return math.Round(proteinG), math.Round(carbsG)
}

func gramRange(minPerKg, maxPerKg, bodyWeightKg float64) models.MacroRange {
	return models.MacroRange{
		MinGrams: int(math.Round(minPerKg * bodyWeightKg)),
		MaxGrams: int(math.Round(maxPerKg * bodyWeightKg)),
	}
}
