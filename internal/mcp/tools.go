// ABOUTME: MCP tool implementations for the fuelcast engine.
// ABOUTME: Workout lifecycle, meal logging, fueling advice, recovery status.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prometheusfit/fuelcast/internal/models"
	"github.com/prometheusfit/fuelcast/internal/pattern"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a workout session (overwrites any stale in-progress session)",
	}, s.handleStartWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "end_workout",
		Description: "End the in-progress workout, update the pattern, and start recovery tracking",
	}, s.handleEndWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cancel_workout",
		Description: "Discard the in-progress workout without recording it",
	}, s.handleCancelWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log a meal with optional macros; feeds recovery tracking when active",
	}, s.handleLogMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fueling_advice",
		Description: "Get the current pre-workout nutrition recommendation",
	}, s.handleFuelingAdvice)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recovery_status",
		Description: "Get the post-workout recovery window status",
	}, s.handleRecoveryStatus)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_recovery_intake",
		Description: "Add consumed protein/carbs (grams) to active recovery tracking",
	}, s.handleRecordRecoveryIntake)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_pattern",
		Description: "Get the derived weekly workout pattern",
	}, s.handleGetPattern)
}

// Tool input/output types

type startWorkoutInput struct {
	WorkoutType string `json:"workout_type,omitempty" jsonschema:"Freeform workout type (run, lift, hiit, ...)"`
	Fasted      bool   `json:"fasted,omitempty" jsonschema:"Training fasted"`
	PreMealAt   string `json:"pre_meal_at,omitempty" jsonschema:"When the pre-workout meal was eaten (ISO 8601)"`
}

type workoutOutput struct {
	ID          string `json:"id"`
	WorkoutType string `json:"workout_type,omitempty"`
	Message     string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logMealInput struct {
	ProteinG float64 `json:"protein_g,omitempty" jsonschema:"Protein in grams"`
	CarbsG   float64 `json:"carbs_g,omitempty" jsonschema:"Carbs in grams"`
	FatG     float64 `json:"fat_g,omitempty" jsonschema:"Fat in grams"`
	Notes    string  `json:"notes,omitempty" jsonschema:"Optional notes"`
	LoggedAt string  `json:"logged_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type recoveryIntakeInput struct {
	ProteinG float64 `json:"protein_g" jsonschema:"Protein consumed in grams"`
	CarbsG   float64 `json:"carbs_g,omitempty" jsonschema:"Carbs consumed in grams"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	opts := pattern.StartOptions{
		WorkoutType: input.WorkoutType,
		WasFasted:   input.Fasted,
	}
	if input.PreMealAt != "" {
		if t, err := time.Parse(time.RFC3339, input.PreMealAt); err == nil {
			opts.PreWorkoutMealAt = &t
		}
	}

	w, err := s.patterns.StartWorkout(opts)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to start workout: %w", err)
	}

	return nil, workoutOutput{
		ID:          w.ID.String()[:8],
		WorkoutType: input.WorkoutType,
		Message:     fmt.Sprintf("Workout started at %s (ID: %s)", w.StartedAt.Format("15:04"), w.ID.String()[:8]),
	}, nil
}

func (s *Server) handleEndWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.patterns.EndWorkout()
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to end workout: %w", err)
	}
	if w == nil {
		return nil, workoutOutput{Message: "No workout in progress."}, nil
	}

	if _, err := s.advisor.StartRecovery(*w.EndedAt, w.WasFasted); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to start recovery tracking: %w", err)
	}

	return nil, workoutOutput{
		ID:      w.ID.String()[:8],
		Message: fmt.Sprintf("Workout ended after %d min. Recovery tracking started.", *w.DurationMinutes),
	}, nil
}

func (s *Server) handleCancelWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.patterns.CancelWorkout(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to cancel workout: %w", err)
	}
	return nil, simpleOutput{Message: "Workout cancelled."}, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	loggedAt := time.Now()
	if input.LoggedAt != "" {
		if t, err := time.Parse(time.RFC3339, input.LoggedAt); err == nil {
			loggedAt = t
		}
	}

	m := models.NewMealEntry(loggedAt).WithMacros(input.ProteinG, input.CarbsG, input.FatG)
	if input.Notes != "" {
		m.WithNotes(input.Notes)
	}

	if err := s.repo.LogMeal(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}
	if err := s.advisor.LogMeal(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update advisor: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Meal logged at %s (P%.0fg C%.0fg F%.0fg)",
			loggedAt.Format("15:04"), input.ProteinG, input.CarbsG, input.FatG),
	}, nil
}

func (s *Server) handleFuelingAdvice(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	st, err := s.advisor.PreWorkoutState()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute advice: %w", err)
	}
	return nil, st, nil
}

func (s *Server) handleRecoveryStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	r, err := s.advisor.RecoveryState()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute recovery status: %w", err)
	}
	if r == nil {
		return nil, map[string]any{"message": "No recovery tracking active."}, nil
	}
	return nil, r, nil
}

func (s *Server) handleRecordRecoveryIntake(ctx context.Context, req *mcp.CallToolRequest, input recoveryIntakeInput) (*mcp.CallToolResult, any, error) {
	r, err := s.advisor.RecordRecoveryIntake(input.ProteinG, input.CarbsG)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record intake: %w", err)
	}
	if r == nil {
		return nil, map[string]any{"message": "No recovery tracking active."}, nil
	}
	return nil, r, nil
}

func (s *Server) handleGetPattern(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	p, err := s.patterns.Pattern()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pattern: %w", err)
	}
	if p == nil {
		return nil, map[string]any{"message": "Not enough workouts tracked yet (need 3)."}, nil
	}
	return nil, p, nil
}
