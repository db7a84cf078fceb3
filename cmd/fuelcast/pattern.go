// ABOUTME: CLI command for inspecting the derived workout pattern.
// ABOUTME: Renders per-weekday predictions, spread, and confidence.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Show the derived weekly workout pattern",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := patterns.Pattern()
		if err != nil {
			return fmt.Errorf("failed to load pattern: %w", err)
		}
		if p == nil {
			fmt.Println("Not enough workouts tracked yet (need 3).")
			return nil
		}

		fmt.Printf("Workouts tracked: %d\n", p.TotalWorkoutsTracked)
		fmt.Printf("Overall confidence: %.0f%%\n", p.OverallConfidence*100)
		if p.MostCommonType != nil {
			fmt.Printf("Most common type: %s\n", *p.MostCommonType)
		}
		if p.AvgDurationMinutes != nil {
			fmt.Printf("Average duration: %.0f min\n", *p.AvgDurationMinutes)
		}
		fmt.Println()

		names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
		faint := color.New(color.Faint)
		for day := 1; day <= 7; day++ {
			dp, ok := p.DayPatternFor(day)
			if !ok {
				faint.Printf("%-10s -\n", names[day-1])
				continue
			}
			fmt.Printf("%-10s %02d:%02d  ±%.1fh  %.0f%%  (%d sessions)\n",
				names[day-1], dp.AvgMinuteOfDay/60, dp.AvgMinuteOfDay%60,
				dp.StdDevHours, dp.Confidence*100, dp.OccurrenceCount)
		}

		if likely, err := patterns.IsWorkoutLikelyToday(); err == nil && likely {
			if predicted, err := patterns.PredictedWorkoutTimeToday(); err == nil && predicted != nil {
				fmt.Printf("\nToday: workout likely around %s\n", predicted.Format("15:04"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patternCmd)
}
