// ABOUTME: CLI command for logging meals.
// ABOUTME: Updates last-meal timing and feeds active recovery tracking.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prometheusfit/fuelcast/internal/models"
)

var (
	mealProtein float64
	mealCarbs   float64
	mealFat     float64
	mealNotes   string
	mealAt      string
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log a meal",
	Long: `Log a meal, optionally with macros.

Examples:
  fuelcast meal                             # just mark that you ate
  fuelcast meal --protein 40 --carbs 60
  fuelcast meal --protein 30 --at 12:30 --notes "chicken and rice"

Logging a meal resets the hours-since-last-meal input of the pre-workout
recommendation. While post-workout recovery tracking is active, the meal's
protein and carbs count toward the recovery target.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loggedAt := time.Now()
		if mealAt != "" {
			t, err := parseClock(mealAt)
			if err != nil {
				return fmt.Errorf("invalid --at time: %s", mealAt)
			}
			loggedAt = t
		}

		m := models.NewMealEntry(loggedAt).WithMacros(mealProtein, mealCarbs, mealFat)
		if mealNotes != "" {
			m.WithNotes(mealNotes)
		}

		if err := repo.LogMeal(m); err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}
		if err := advisor.LogMeal(m); err != nil {
			return fmt.Errorf("failed to update advisor: %w", err)
		}

		color.Green("✓ Meal logged at %s", loggedAt.Format("15:04"))
		if mealProtein > 0 || mealCarbs > 0 || mealFat > 0 {
			fmt.Printf("  P%.0fg C%.0fg F%.0fg\n", mealProtein, mealCarbs, mealFat)
		}

		if r, err := advisor.RecoveryState(); err == nil && r != nil {
			fmt.Printf("  Recovery: %.0f/%.0fg protein\n", r.ProteinConsumedG, r.ProteinTargetG)
		}
		return nil
	},
}

func init() {
	mealCmd.Flags().Float64VarP(&mealProtein, "protein", "p", 0, "protein in grams")
	mealCmd.Flags().Float64VarP(&mealCarbs, "carbs", "c", 0, "carbs in grams")
	mealCmd.Flags().Float64VarP(&mealFat, "fat", "F", 0, "fat in grams")
	mealCmd.Flags().StringVar(&mealNotes, "notes", "", "meal notes")
	mealCmd.Flags().StringVar(&mealAt, "at", "", "when the meal was eaten (HH:MM), defaults to now")
	rootCmd.AddCommand(mealCmd)
}
