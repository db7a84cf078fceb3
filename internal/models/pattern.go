// ABOUTME: Derived workout-pattern models: per-weekday stats and overall model.
// ABOUTME: Produced by full recomputation over the bounded workout history.
package models

import "time"

// DayPattern is the derived statistic for one ISO weekday. Only weekdays with
// at least two historical occurrences produce a DayPattern.
type DayPattern struct {
	DayOfWeek       int     `json:"day_of_week"`
	OccurrenceCount int     `json:"occurrence_count"`
	AvgMinuteOfDay  int     `json:"avg_minute_of_day"` // recency-weighted mean, minutes since midnight
	StdDevHours     float64 `json:"std_dev_hours"`
	Confidence      float64 `json:"confidence"` // [0,1]
}

// AverageHour returns the predicted time of day as a fractional hour.
func (p DayPattern) AverageHour() float64 {
	return float64(p.AvgMinuteOfDay) / 60.0
}

// WorkoutPattern is the full derived model for one user. It is replaced
// wholesale on every workout end, never patched incrementally. Nil when
// fewer than three workouts have been tracked.
type WorkoutPattern struct {
	DayPatterns          map[int]DayPattern `json:"day_patterns"` // sparse, keyed by ISO weekday
	TotalWorkoutsTracked int                `json:"total_workouts_tracked"`
	OverallConfidence    float64            `json:"overall_confidence"`
	MostCommonType       *string            `json:"most_common_type,omitempty"`
	AvgDurationMinutes   *float64           `json:"avg_duration_minutes,omitempty"`
	LastUpdated          time.Time          `json:"last_updated"`
}

// DayPatternFor returns the pattern for an ISO weekday, if present.
func (p *WorkoutPattern) DayPatternFor(dayOfWeek int) (DayPattern, bool) {
	if p == nil {
		return DayPattern{}, false
	}
	dp, ok := p.DayPatterns[dayOfWeek]
	return dp, ok
}
