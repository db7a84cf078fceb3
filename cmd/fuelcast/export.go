// ABOUTME: CLI commands for exporting and importing fuelcast data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prometheusfit/fuelcast/internal/storage"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export the workout history, meal log, and derived pattern.

Examples:
  fuelcast export                        # JSON to stdout
  fuelcast export --format yaml
  fuelcast export --format markdown -o report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to gather data: %w", err)
		}

		pattern, err := patterns.Pattern()
		if err != nil {
			return fmt.Errorf("failed to load pattern: %w", err)
		}
		data.Pattern = pattern

		var out []byte
		switch exportFormat {
		case "json":
			out, err = data.FormatJSON()
		case "yaml":
			out, err = data.FormatYAML()
		case "markdown", "md":
			out = data.FormatMarkdown()
		default:
			return fmt.Errorf("unknown format: %q (json, yaml, markdown)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to format export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse import file: %w", err)
		}

		if err := repo.ImportData(&data); err != nil {
			return fmt.Errorf("failed to import data: %w", err)
		}

		// The imported history supersedes whatever pattern was stored.
		if err := patterns.Recompute(); err != nil {
			return fmt.Errorf("failed to recompute pattern: %w", err)
		}

		color.Green("✓ Imported %d workouts, %d meals", len(data.Workouts), len(data.Meals))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json, yaml, markdown)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
