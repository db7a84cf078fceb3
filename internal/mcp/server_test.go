// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prometheusfit/fuelcast/internal/nutrition"
	"github.com/prometheusfit/fuelcast/internal/pattern"
	"github.com/prometheusfit/fuelcast/internal/state"
	"github.com/prometheusfit/fuelcast/internal/storage"
)

// setupTestServer wires the full engine over temp stores.
func setupTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	db, err := storage.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	st, err := state.Open(filepath.Join(dir, "state"))
	if err != nil {
		t.Fatalf("Failed to open state store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	patterns := pattern.NewStore(db, st)
	advisor := nutrition.NewAdvisor(patterns, st, 75, nutrition.DefaultWindows)

	server, err := NewServer(patterns, advisor, db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.patterns == nil {
		t.Error("Expected non-nil patterns")
	}
	if server.advisor == nil {
		t.Error("Expected non-nil advisor")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleStartAndEndWorkout(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleStartWorkout(ctx, &mcp.CallToolRequest{}, startWorkoutInput{
		WorkoutType: "run",
		Fasted:      true,
	})
	if err != nil {
		t.Fatalf("handleStartWorkout failed: %v", err)
	}
	if output.ID == "" {
		t.Error("Expected non-empty ID")
	}
	if !strings.Contains(output.Message, "Workout started") {
		t.Errorf("Message = %q, want a started confirmation", output.Message)
	}

	_, endOutput, err := server.handleEndWorkout(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleEndWorkout failed: %v", err)
	}
	if !strings.Contains(endOutput.Message, "Recovery tracking started") {
		t.Errorf("Message = %q, want recovery confirmation", endOutput.Message)
	}

	// Ending again is a no-op with a message, not an error.
	_, endOutput, err = server.handleEndWorkout(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("second handleEndWorkout failed: %v", err)
	}
	if endOutput.Message != "No workout in progress." {
		t.Errorf("Message = %q, want no-workout message", endOutput.Message)
	}
}

func TestHandleCancelWorkout(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleStartWorkout(ctx, &mcp.CallToolRequest{}, startWorkoutInput{})
	if err != nil {
		t.Fatalf("handleStartWorkout failed: %v", err)
	}

	_, output, err := server.handleCancelWorkout(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleCancelWorkout failed: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}
}

func TestHandleLogMeal(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleLogMeal(ctx, &mcp.CallToolRequest{}, logMealInput{
		ProteinG: 35,
		CarbsG:   60,
		FatG:     15,
		Notes:    "post-run bowl",
	})
	if err != nil {
		t.Fatalf("handleLogMeal failed: %v", err)
	}
	if !strings.Contains(output.Message, "Meal logged") {
		t.Errorf("Message = %q, want logged confirmation", output.Message)
	}

	meals, err := server.repo.ListMeals(0)
	if err != nil {
		t.Fatalf("ListMeals failed: %v", err)
	}
	if len(meals) != 1 {
		t.Errorf("meal count = %d, want 1", len(meals))
	}
}

func TestHandleLogMealWithTimestamp(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleLogMeal(ctx, &mcp.CallToolRequest{}, logMealInput{
		ProteinG: 20,
		LoggedAt: "2025-03-10T12:30:00Z",
	})
	if err != nil {
		t.Fatalf("handleLogMeal failed: %v", err)
	}
	if !strings.Contains(output.Message, "12:30") {
		t.Errorf("Message = %q, want the provided timestamp", output.Message)
	}
}

func TestHandleFuelingAdvice(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleFuelingAdvice(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleFuelingAdvice failed: %v", err)
	}
	if output == nil {
		t.Error("Expected non-nil output")
	}
}

func TestHandleRecoveryStatusInactive(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleRecoveryStatus(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleRecoveryStatus failed: %v", err)
	}
	msg, ok := output.(map[string]any)
	if !ok {
		t.Fatalf("expected message map without active tracking, got %T", output)
	}
	if msg["message"] == "" {
		t.Error("Expected non-empty message")
	}
}

func TestHandleRecordRecoveryIntake(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	// Without active tracking: message map.
	_, output, err := server.handleRecordRecoveryIntake(ctx, &mcp.CallToolRequest{}, recoveryIntakeInput{ProteinG: 20})
	if err != nil {
		t.Fatalf("handleRecordRecoveryIntake failed: %v", err)
	}
	if _, ok := output.(map[string]any); !ok {
		t.Fatalf("expected message map without active tracking, got %T", output)
	}

	// End a workout to activate recovery, then record intake.
	if _, _, err := server.handleStartWorkout(ctx, &mcp.CallToolRequest{}, startWorkoutInput{}); err != nil {
		t.Fatalf("handleStartWorkout failed: %v", err)
	}
	if _, _, err := server.handleEndWorkout(ctx, &mcp.CallToolRequest{}, struct{}{}); err != nil {
		t.Fatalf("handleEndWorkout failed: %v", err)
	}

	_, output, err = server.handleRecordRecoveryIntake(ctx, &mcp.CallToolRequest{}, recoveryIntakeInput{ProteinG: 20, CarbsG: 40})
	if err != nil {
		t.Fatalf("handleRecordRecoveryIntake failed: %v", err)
	}
	if _, ok := output.(map[string]any); ok {
		t.Error("expected a recovery snapshot, got the inactive message")
	}
}

func TestHandleGetPatternEmpty(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleGetPattern(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleGetPattern failed: %v", err)
	}
	if _, ok := output.(map[string]any); !ok {
		t.Fatalf("expected message map with no pattern, got %T", output)
	}
}

func TestHandlePatternResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	result, err := server.handlePatternResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handlePatternResource failed: %v", err)
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "fuelcast://pattern" {
		t.Errorf("URI = %s, want fuelcast://pattern", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}
}

func TestHandleTodayResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleTodayResource failed: %v", err)
	}
	if result.Contents[0].URI != "fuelcast://today" {
		t.Errorf("URI = %s, want fuelcast://today", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "pre_workout") {
		t.Error("Expected pre_workout section in today resource")
	}
}

func TestHandleHistoryResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	if _, _, err := server.handleStartWorkout(ctx, &mcp.CallToolRequest{}, startWorkoutInput{WorkoutType: "lift"}); err != nil {
		t.Fatalf("handleStartWorkout failed: %v", err)
	}
	if _, _, err := server.handleEndWorkout(ctx, &mcp.CallToolRequest{}, struct{}{}); err != nil {
		t.Fatalf("handleEndWorkout failed: %v", err)
	}

	result, err := server.handleHistoryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleHistoryResource failed: %v", err)
	}
	if result.Contents[0].URI != "fuelcast://history" {
		t.Errorf("URI = %s, want fuelcast://history", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "lift") {
		t.Error("Expected recorded workout in history resource")
	}
}
