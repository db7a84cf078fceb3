// ABOUTME: Pattern derivation: per-weekday recency-weighted statistics and
// ABOUTME: confidence scoring over the bounded workout history.
package pattern

import (
	"math"
	"time"

	"github.com/prometheusfit/fuelcast/internal/models"
)

const (
	// minTotalWorkouts gates pattern production entirely.
	minTotalWorkouts = 3
	// minDayOccurrences gates per-weekday patterns.
	minDayOccurrences = 2

	// recencyDecay controls the per-position weight 1/(1 + i*recencyDecay).
	recencyDecay = 0.1
	// maxSpreadHours is the std dev treated as zero consistency.
	maxSpreadHours = 12.0
	// recencyWindow bounds the "recent" share of a weekday's records.
	recencyWindow = 14 * 24 * time.Hour

	occurrenceWeight  = 0.3
	consistencyWeight = 0.4
	recencyWeight     = 0.3
)

// Compute derives a WorkoutPattern from history, which must be ordered
// most-recent-first. Returns nil when fewer than three workouts are tracked.
// Pure: the only environmental input is now (for the recency component).
func Compute(history []*models.WorkoutRecord, now time.Time) *models.WorkoutPattern {
	if len(history) < minTotalWorkouts {
		return nil
	}

	byDay := make(map[int][]*models.WorkoutRecord)
	for _, w := range history {
		byDay[w.DayOfWeek] = append(byDay[w.DayOfWeek], w)
	}

	dayPatterns := make(map[int]models.DayPattern)
	var confidenceSum float64
	for day, records := range byDay {
		if len(records) < minDayOccurrences {
			continue
		}
		dp := computeDay(day, records, len(history), now)
		dayPatterns[day] = dp
		confidenceSum += dp.Confidence
	}

	overall := 0.0
	if len(dayPatterns) > 0 {
		overall = confidenceSum / float64(len(dayPatterns))
	}

	return &models.WorkoutPattern{
		DayPatterns:          dayPatterns,
		TotalWorkoutsTracked: len(history),
		OverallConfidence:    overall,
		MostCommonType:       mostCommonType(history),
		AvgDurationMinutes:   averageDuration(history),
		LastUpdated:          now,
	}
}

// computeDay derives the DayPattern for one weekday. records must be ordered
// most-recent-first, which grouping preserves from the history ordering.
func computeDay(day int, records []*models.WorkoutRecord, total int, now time.Time) models.DayPattern {
	// Recency-weighted mean of hour-of-day: the i-th most recent record
	// weighs 1/(1 + i*0.1).
	var weightedSum, weightSum float64
	for i, w := range records {
		weight := 1.0 / (1.0 + float64(i)*recencyDecay)
		weightedSum += w.HourFloat() * weight
		weightSum += weight
	}
	avgHour := weightedSum / weightSum

	// Population std dev of hour-of-day around the weighted mean.
	var sqSum float64
	for _, w := range records {
		d := w.HourFloat() - avgHour
		sqSum += d * d
	}
	stdDev := math.Sqrt(sqSum / float64(len(records)))

	// Occurrence: share of all workouts on this weekday, saturating at 0.5.
	occurrence := math.Min(float64(len(records))/float64(total), 0.5) * 2.0

	// Consistency: 12h spread is treated as no consistency at all.
	consistency := clamp01(1.0 - stdDev/maxSpreadHours)

	// Recency: fraction of this weekday's records inside the last 14 days.
	recent := 0
	cutoff := now.Add(-recencyWindow)
	for _, w := range records {
		if w.StartedAt.After(cutoff) {
			recent++
		}
	}
	recency := float64(recent) / float64(len(records))

	confidence := clamp01(occurrenceWeight*occurrence + consistencyWeight*consistency + recencyWeight*recency)

	return models.DayPattern{
		DayOfWeek:       day,
		OccurrenceCount: len(records),
		AvgMinuteOfDay:  int(math.Round(avgHour * 60.0)),
		StdDevHours:     stdDev,
		Confidence:      confidence,
	}
}

// mostCommonType returns the mode of non-nil workout types, ties broken by
// the type seen first in most-recent-first order.
func mostCommonType(history []*models.WorkoutRecord) *string {
	counts := make(map[string]int)
	var order []string
	for _, w := range history {
		if w.WorkoutType == nil {
			continue
		}
		if _, seen := counts[*w.WorkoutType]; !seen {
			order = append(order, *w.WorkoutType)
		}
		counts[*w.WorkoutType]++
	}

	var best *string
	bestCount := 0
	for _, t := range order {
		if counts[t] > bestCount {
			bestCount = counts[t]
			tt := t
			best = &tt
		}
	}
	return best
}

// averageDuration returns the mean of known durations, or nil if none known.
func averageDuration(history []*models.WorkoutRecord) *float64 {
	var sum float64
	count := 0
	for _, w := range history {
		if w.DurationMinutes != nil {
			sum += float64(*w.DurationMinutes)
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

// PredictToday projects the pattern onto the current date. Returns the
// predicted instant for today's weekday, or nil when today has no pattern.
// The instant is returned even when it has already passed.
func PredictToday(p *models.WorkoutPattern, now time.Time) *time.Time {
	dp, ok := p.DayPatternFor(models.ISOWeekday(now))
	if !ok {
		return nil
	}
	predicted := time.Date(now.Year(), now.Month(), now.Day(),
		dp.AvgMinuteOfDay/60, dp.AvgMinuteOfDay%60, 0, 0, now.Location())
	return &predicted
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
