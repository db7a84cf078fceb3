// ABOUTME: CLI command for viewing and updating configuration.
// ABOUTME: Body weight, data directory, and recovery window thresholds.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prometheusfit/fuelcast/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Config file: %s\n", config.GetConfigPath())
		fmt.Printf("Data dir: %s\n", cfg.GetDataDir())
		fmt.Printf("Body weight: %.1f kg\n", cfg.GetBodyWeightKg())
		w := cfg.GetWindows()
		fmt.Printf("Recovery windows: immediate %dmin, optimal %dmin, extended %dmin\n",
			w.ImmediateMin, w.OptimalMin, w.ExtendedMin)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Keys: body_weight_kg, data_dir

Examples:
  fuelcast config set body_weight_kg 82.5
  fuelcast config set data_dir ~/fitness/fuelcast`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "body_weight_kg":
			kg, err := strconv.ParseFloat(value, 64)
			if err != nil || kg <= 0 {
				return fmt.Errorf("invalid body weight: %s", value)
			}
			cfg.BodyWeightKg = kg
		case "data_dir":
			cfg.DataDir = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
