// ABOUTME: MCP resource implementations for the fuelcast engine.
// ABOUTME: Provides fuelcast://pattern, fuelcast://today, fuelcast://history.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fuelcast://pattern",
		Name:        "Workout Pattern",
		Description: "Derived per-weekday workout pattern with confidence scores",
		MIMEType:    "application/json",
	}, s.handlePatternResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fuelcast://today",
		Name:        "Today's Fueling Picture",
		Description: "Today's prediction plus the current pre-workout recommendation",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fuelcast://history",
		Name:        "Workout History",
		Description: "The retained workout history (most recent first)",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// Resource handlers

func (s *Server) handlePatternResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.patterns.Pattern()
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern: %w", err)
	}

	result := map[string]any{"pattern": p}
	if p == nil {
		result["message"] = "Not enough workouts tracked yet (need 3)."
	}

	return jsonResource("fuelcast://pattern", result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st, err := s.advisor.PreWorkoutState()
	if err != nil {
		return nil, fmt.Errorf("failed to compute advice: %w", err)
	}

	likely, err := s.patterns.IsWorkoutLikelyToday()
	if err != nil {
		return nil, fmt.Errorf("failed to check today's pattern: %w", err)
	}

	recovery, err := s.advisor.RecoveryState()
	if err != nil {
		return nil, fmt.Errorf("failed to compute recovery status: %w", err)
	}

	result := map[string]any{
		"workout_likely_today": likely,
		"pre_workout":          st,
		"recovery":             recovery,
	}

	return jsonResource("fuelcast://today", result)
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.repo.ListWorkouts(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	result := map[string]any{
		"count":    len(workouts),
		"workouts": workouts,
	}

	return jsonResource("fuelcast://history", result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
