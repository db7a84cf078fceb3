// ABOUTME: CLI commands for the workout lifecycle.
// ABOUTME: Supports start, end, cancel, and list subcommands.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prometheusfit/fuelcast/internal/pattern"
)

var (
	workoutFasted  bool
	workoutPreMeal string
	workoutLimit   int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout sessions",
	Long: `Track workout sessions that feed the weekly pattern.

WORKFLOW:

  1. Start a session:   fuelcast workout start lift --fasted
  2. Finish it:         fuelcast workout end
  3. Or abort it:       fuelcast workout cancel

Ending a workout appends it to the rolling history (most recent 100 kept)
and recomputes the weekly pattern in full. Cancelling discards the session
without touching history or pattern.

The workout type is freeform - use whatever makes sense for you:
  run, lift, swim, cycle, yoga, hiit, walk, climb, etc.`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start [type]",
	Short: "Start a workout session",
	Long: `Start a workout session.

Examples:
  fuelcast workout start lift
  fuelcast workout start run --fasted
  fuelcast workout start hiit --pre-meal 16:30

Starting a session while another is in progress silently replaces it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pattern.StartOptions{WasFasted: workoutFasted}
		if len(args) > 0 {
			opts.WorkoutType = args[0]
		}
		if workoutPreMeal != "" {
			t, err := parseClock(workoutPreMeal)
			if err != nil {
				return fmt.Errorf("invalid --pre-meal time: %s", workoutPreMeal)
			}
			opts.PreWorkoutMealAt = &t
		}

		w, err := patterns.StartWorkout(opts)
		if err != nil {
			return fmt.Errorf("failed to start workout: %w", err)
		}

		label := "workout"
		if w.WorkoutType != nil {
			label = *w.WorkoutType + " workout"
		}
		color.Green("✓ Started %s at %s", label, w.StartedAt.Format("15:04"))
		if w.WasFasted {
			fmt.Println("  Training fasted")
		}
		return nil
	},
}

var workoutEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the in-progress workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := patterns.EndWorkout()
		if err != nil {
			return fmt.Errorf("failed to end workout: %w", err)
		}
		if w == nil {
			fmt.Println("No workout in progress.")
			return nil
		}

		if _, err := advisor.StartRecovery(*w.EndedAt, w.WasFasted); err != nil {
			color.Yellow("⚠ Recovery tracking failed: %v", err)
		}

		color.Green("✓ Workout ended after %d min", *w.DurationMinutes)

		r, err := advisor.RecoveryState()
		if err == nil && r != nil {
			fmt.Printf("  %s\n", r.Message)
			fmt.Printf("  Target: %.0fg protein, %.0fg carbs\n", r.ProteinTargetG, r.CarbTargetG)
		}
		return nil
	},
}

var workoutCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the in-progress workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := patterns.CancelWorkout(); err != nil {
			return fmt.Errorf("failed to cancel workout: %w", err)
		}
		color.Green("✓ Workout cancelled")
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := repo.ListWorkouts(workoutLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			wType := "-"
			if w.WorkoutType != nil {
				wType = *w.WorkoutType
			}
			duration := ""
			if w.DurationMinutes != nil {
				duration = fmt.Sprintf("%d min", *w.DurationMinutes)
			}
			fasted := ""
			if w.WasFasted {
				fasted = "fasted"
			}
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(w.ID.String()[:8]),
				faint.Sprint(w.StartedAt.Format("2006-01-02 15:04")),
				padRight(wType, 12),
				padRight(duration, 8),
				fasted)
		}
		return nil
	},
}

func init() {
	workoutStartCmd.Flags().BoolVarP(&workoutFasted, "fasted", "f", false, "training fasted")
	workoutStartCmd.Flags().StringVar(&workoutPreMeal, "pre-meal", "", "when the pre-workout meal was eaten (HH:MM)")

	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutEndCmd)
	workoutCmd.AddCommand(workoutCancelCmd)
	workoutCmd.AddCommand(workoutListCmd)
	rootCmd.AddCommand(workoutCmd)
}

// parseClock parses "HH:MM" as today's wall clock.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
