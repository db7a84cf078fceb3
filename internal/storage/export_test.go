// ABOUTME: Tests for export and import: duplicate skipping and the JSON
// ABOUTME: roundtrip of a full export.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/prometheusfit/fuelcast/internal/models"
)

func TestImportSkipsDuplicates(t *testing.T) {
	db := setupTestDB(t)

	w := models.NewWorkoutRecord(time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC))
	w.Finalize(w.StartedAt.Add(time.Hour))
	if err := db.AppendWorkout(w); err != nil {
		t.Fatalf("AppendWorkout failed: %v", err)
	}
	m := models.NewMealEntry(time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC))
	if err := db.LogMeal(m); err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	fresh := models.NewWorkoutRecord(time.Date(2025, 3, 4, 7, 0, 0, 0, time.UTC))
	fresh.Finalize(fresh.StartedAt.Add(30 * time.Minute))

	data := &ExportData{
		Workouts: []*models.WorkoutRecord{w, fresh},
		Meals:    []*models.MealEntry{m},
	}
	if err := db.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	count, _ := db.CountWorkouts()
	if count != 2 {
		t.Errorf("workout count = %d, want 2", count)
	}
	meals, _ := db.ListMeals(0)
	if len(meals) != 1 {
		t.Errorf("meal count = %d, want 1", len(meals))
	}
}

func TestExportJSONRoundtrip(t *testing.T) {
	db := setupTestDB(t)

	w := models.NewWorkoutRecord(time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)).WithType("lift")
	w.Finalize(w.StartedAt.Add(time.Hour))
	if err := db.AppendWorkout(w); err != nil {
		t.Fatalf("AppendWorkout failed: %v", err)
	}

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	raw, err := data.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var parsed ExportData
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("export JSON does not parse: %v", err)
	}
	if parsed.Tool != "fuelcast" || parsed.Version != "1.0" {
		t.Errorf("tool/version = %s/%s, want fuelcast/1.0", parsed.Tool, parsed.Version)
	}
	if len(parsed.Workouts) != 1 || parsed.Workouts[0].ID != w.ID {
		t.Errorf("workouts did not roundtrip: %+v", parsed.Workouts)
	}
}

func TestFormatMarkdownSections(t *testing.T) {
	mostCommon := "lift"
	e := &ExportData{
		ExportedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Pattern: &models.WorkoutPattern{
			DayPatterns: map[int]models.DayPattern{
				1: {DayOfWeek: 1, OccurrenceCount: 4, AvgMinuteOfDay: 1110, StdDevHours: 0.5, Confidence: 0.8},
			},
			TotalWorkoutsTracked: 4,
			OverallConfidence:    0.8,
			MostCommonType:       &mostCommon,
		},
	}

	md := string(e.FormatMarkdown())
	for _, want := range []string{"## Workout Pattern", "| Mon | 18:30 |", "## Workout History", "## Meal Log"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
