// ABOUTME: Export and import functionality for fuelcast data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prometheusfit/fuelcast/internal/models"
)

// ExportData represents the full export format.
type ExportData struct {
	Version    string                  `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool       string                  `json:"tool" yaml:"tool"`
	Workouts   []*models.WorkoutRecord `json:"workouts" yaml:"workouts"`
	Meals      []*models.MealEntry     `json:"meals" yaml:"meals"`
	Pattern    *models.WorkoutPattern  `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// GetAllData retrieves all relational data for export. The derived pattern
// lives in the KV state store; callers attach it before formatting.
func (d *DB) GetAllData() (*ExportData, error) {
	workouts, err := d.ListWorkouts(0)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	meals, err := d.ListMeals(0)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fuelcast",
		Workouts:   workouts,
		Meals:      meals,
	}, nil
}

// ImportData imports data from an export file. Existing records with the
// same ID are skipped, and the history bound still applies.
func (d *DB) ImportData(data *ExportData) error {
	for _, w := range data.Workouts {
		if err := d.AppendWorkout(w); err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint") {
				continue
			}
			return fmt.Errorf("import workout %s: %w", w.ID, err)
		}
	}

	for _, m := range data.Meals {
		if err := d.LogMeal(m); err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint") {
				continue
			}
			return fmt.Errorf("import meal %s: %w", m.ID, err)
		}
	}

	return nil
}

// FormatJSON renders the export as indented JSON.
func (e *ExportData) FormatJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// FormatYAML renders the export as YAML.
func (e *ExportData) FormatYAML() ([]byte, error) {
	return yaml.Marshal(e)
}

// FormatMarkdown renders a human-readable Markdown report.
func (e *ExportData) FormatMarkdown() []byte {
	var b strings.Builder

	b.WriteString("# Fuelcast Export\n\n")
	fmt.Fprintf(&b, "Exported: %s\n\n", e.ExportedAt.Format("2006-01-02 15:04"))

	if e.Pattern != nil {
		b.WriteString("## Workout Pattern\n\n")
		fmt.Fprintf(&b, "- Workouts tracked: %d\n", e.Pattern.TotalWorkoutsTracked)
		fmt.Fprintf(&b, "- Overall confidence: %.2f\n", e.Pattern.OverallConfidence)
		if e.Pattern.MostCommonType != nil {
			fmt.Fprintf(&b, "- Most common type: %s\n", *e.Pattern.MostCommonType)
		}
		if e.Pattern.AvgDurationMinutes != nil {
			fmt.Fprintf(&b, "- Average duration: %.0f min\n", *e.Pattern.AvgDurationMinutes)
		}
		b.WriteString("\n| Day | Predicted | Spread | Confidence | Sessions |\n")
		b.WriteString("|-----|-----------|--------|------------|----------|\n")
		for day := 1; day <= 7; day++ {
			dp, ok := e.Pattern.DayPatternFor(day)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "| %s | %02d:%02d | ±%.1fh | %.2f | %d |\n",
				weekdayName(day), dp.AvgMinuteOfDay/60, dp.AvgMinuteOfDay%60,
				dp.StdDevHours, dp.Confidence, dp.OccurrenceCount)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Workout History\n\n")
	if len(e.Workouts) == 0 {
		b.WriteString("No workouts recorded.\n\n")
	}
	for _, w := range e.Workouts {
		line := fmt.Sprintf("- %s", w.StartedAt.Format("2006-01-02 15:04"))
		if w.WorkoutType != nil {
			line += " " + *w.WorkoutType
		}
		if w.DurationMinutes != nil {
			line += fmt.Sprintf(" (%d min)", *w.DurationMinutes)
		}
		if w.WasFasted {
			line += " [fasted]"
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n## Meal Log\n\n")
	if len(e.Meals) == 0 {
		b.WriteString("No meals recorded.\n")
	}
	for _, m := range e.Meals {
		fmt.Fprintf(&b, "- %s P%.0fg C%.0fg F%.0fg\n",
			m.LoggedAt.Format("2006-01-02 15:04"), m.ProteinG, m.CarbsG, m.FatG)
	}

	return []byte(b.String())
}

func weekdayName(day int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if day < 1 || day > 7 {
		return "?"
	}
	return names[day-1]
}
