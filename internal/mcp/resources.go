// ABOUTME: MCP resource implementations for fittrack.
// ABOUTME: Provides fittrack://today, fittrack://workouts, and fittrack://preferences resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI       = "fittrack://today"
	workoutsURI    = "fittrack://workouts"
	preferencesURI = "fittrack://preferences"
)

func (s *Server) registerResources() {
	// fittrack://today - dashboard for the current day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Activity",
		Description: "Steps, calories, goal progress, BMI and activities logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fittrack://workouts - first page of workout summaries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         workoutsURI,
		Name:        "Recent Workouts",
		Description: "First page of workout summaries with intensity and effort score",
		MIMEType:    "application/json",
	}, s.handleWorkoutsResource)

	// fittrack://preferences - profile and goals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         preferencesURI,
		Name:        "Preferences",
		Description: "User profile, body measurements and daily goals",
		MIMEType:    "application/json",
	}, s.handlePreferencesResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	d, err := s.tracker.Today(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return jsonResource(todayURI, d)
}

func (s *Server) handleWorkoutsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	page, err := s.tracker.Workouts(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return jsonResource(workoutsURI, page)
}

func (s *Server) handlePreferencesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.tracker.Preferences()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return jsonResource(preferencesURI, p)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
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
