// ABOUTME: Root Cobra command for fuelcast CLI.
// ABOUTME: Opens config, storage, and state in PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prometheusfit/fuelcast/internal/config"
	"github.com/prometheusfit/fuelcast/internal/nutrition"
	"github.com/prometheusfit/fuelcast/internal/pattern"
	"github.com/prometheusfit/fuelcast/internal/state"
	"github.com/prometheusfit/fuelcast/internal/storage"
)

var (
	cfg        *config.Config
	repo       *storage.DB
	stateStore *state.Store
	patterns   *pattern.Store
	advisor    *nutrition.Advisor
)

var rootCmd = &cobra.Command{
	Use:   "fuelcast",
	Short: "Workout-pattern learning and nutrition timing",
	Long: `Fuelcast learns when you usually train and tells you what to eat, and when.

HOW IT WORKS:

  Every completed workout is added to a rolling history. From that history
  fuelcast derives a per-weekday pattern (predicted time, spread, confidence)
  and uses it to time your pre-workout meals. After each workout it tracks
  protein and carbs against a closing recovery window.

QUICK START:

  $ fuelcast workout start lift         # Start a session
  $ fuelcast workout end                # Finish it (updates the pattern)
  $ fuelcast meal --protein 40 --carbs 60
  $ fuelcast status                     # What/when to eat before training
  $ fuelcast recovery                   # Post-workout window status
  $ fuelcast pattern                    # Your weekly pattern

MCP INTEGRATION:

  Run 'fuelcast mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fuelcast": { "command": "fuelcast", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  History and meals live in SQLite, the in-progress workout and derived
  pattern in a local Badger store, both under ~/.local/share/fuelcast.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = storage.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		stateStore, err = state.Open(cfg.StateDir())
		if err != nil {
			_ = repo.Close()
			return fmt.Errorf("failed to open state store: %w", err)
		}

		patterns = pattern.NewStore(repo, stateStore)
		advisor = nutrition.NewAdvisor(patterns, stateStore, cfg.GetBodyWeightKg(), cfg.GetWindows())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if stateStore != nil {
			if err := stateStore.Close(); err != nil {
				return err
			}
		}
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
