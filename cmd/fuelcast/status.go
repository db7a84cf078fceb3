// ABOUTME: CLI commands for the pre-workout recommendation and the
// ABOUTME: post-workout recovery window status.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prometheusfit/fuelcast/internal/models"
)

var (
	recoveryProtein float64
	recoveryCarbs   float64
	recoveryClear   bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pre-workout nutrition recommendation",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := advisor.PreWorkoutState()
		if err != nil {
			return fmt.Errorf("failed to compute recommendation: %w", err)
		}

		urgencyColor(st.Urgency).Printf("%s\n", st.Message)

		if st.PredictedWorkoutAt != nil {
			fmt.Printf("  Predicted workout: %s (confidence %.0f%%)\n",
				st.PredictedWorkoutAt.Format("15:04"), st.Confidence*100)
		}
		if st.Protein.MaxGrams > 0 || st.Carbs.MaxGrams > 0 {
			fmt.Printf("  Suggested: protein %d-%dg, carbs %d-%dg, fat %d-%dg\n",
				st.Protein.MinGrams, st.Protein.MaxGrams,
				st.Carbs.MinGrams, st.Carbs.MaxGrams,
				st.Fat.MinGrams, st.Fat.MaxGrams)
		}
		fmt.Printf("  Urgency: %s\n", st.Urgency)
		return nil
	},
}

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Show or update the post-workout recovery window",
	Long: `Show the post-workout feeding window, or record consumed macros.

Examples:
  fuelcast recovery                       # show current window status
  fuelcast recovery --protein 35 --carbs 80
  fuelcast recovery --clear               # stop tracking`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if recoveryClear {
			if err := advisor.ClearRecovery(); err != nil {
				return fmt.Errorf("failed to clear recovery tracking: %w", err)
			}
			color.Green("✓ Recovery tracking cleared")
			return nil
		}

		var r *models.RecoveryState
		var err error
		if recoveryProtein > 0 || recoveryCarbs > 0 {
			r, err = advisor.RecordRecoveryIntake(recoveryProtein, recoveryCarbs)
		} else {
			r, err = advisor.RecoveryState()
		}
		if err != nil {
			return fmt.Errorf("failed to compute recovery status: %w", err)
		}
		if r == nil {
			fmt.Println("No recovery tracking active.")
			return nil
		}

		urgencyColor(r.Urgency).Printf("%s\n", r.Message)
		fmt.Printf("  Phase: %s (%d min since workout)\n", r.Phase, r.MinutesSince)
		fmt.Printf("  Protein: %.0f/%.0fg  Carbs: %.0f/%.0fg\n",
			r.ProteinConsumedG, r.ProteinTargetG, r.CarbsConsumedG, r.CarbTargetG)
		return nil
	},
}

func init() {
	recoveryCmd.Flags().Float64VarP(&recoveryProtein, "protein", "p", 0, "protein consumed in grams")
	recoveryCmd.Flags().Float64VarP(&recoveryCarbs, "carbs", "c", 0, "carbs consumed in grams")
	recoveryCmd.Flags().BoolVar(&recoveryClear, "clear", false, "stop recovery tracking")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(recoveryCmd)
}

func urgencyColor(u models.Urgency) *color.Color {
	switch u {
	case models.UrgencyCritical:
		return color.New(color.FgRed, color.Bold)
	case models.UrgencyHigh:
		return color.New(color.FgRed)
	case models.UrgencyMedium:
		return color.New(color.FgYellow)
	case models.UrgencyLow:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}
