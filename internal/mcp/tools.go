// ABOUTME: MCP tool implementations for fittrack.
// ABOUTME: Provides activity CRUD, calorie and goal calculators, workouts, and preferences.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log an activity (steps, calories, or minutes of walking, running, cycling, swimming, yoga, workout)",
	}, s.handleLogActivity)

	// list_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_activities",
		Description: "List logged activities, optionally filtered by category or date",
	}, s.handleListActivities)

	// edit_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "edit_activity",
		Description: "Change the value, duration or note of a logged activity",
	}, s.handleEditActivity)

	// delete_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_activity",
		Description: "Delete an activity by ID or ID prefix",
	}, s.handleDeleteActivity)

	// estimate_calories
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_calories",
		Description: "Estimate calories burned for an activity using MET values and body weight",
	}, s.handleEstimateCalories)

	// goal_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "goal_progress",
		Description: "Compute progress toward a goal as a fraction between 0 and 1",
	}, s.handleGoalProgress)

	// get_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_today",
		Description: "Get today's steps, calories, goal progress and BMI",
	}, s.handleGetToday)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workout summaries from recorded sessions, the remote catalog, or the built-in catalog",
	}, s.handleListWorkouts)

	// get_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get one workout summary by ID or ID prefix",
	}, s.handleGetWorkout)

	// get_preferences
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_preferences",
		Description: "Get the user profile and daily goals",
	}, s.handleGetPreferences)

	// update_preferences
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_preferences",
		Description: "Update profile fields or daily goals; weight, height and goals must be positive",
	}, s.handleUpdatePreferences)
}

// Tool input/output types

type logActivityInput struct {
	Category        string `json:"category" jsonschema:"Activity category: steps, calories, workout, walking, running, cycling, swimming, yoga, or any other label"`
	Value           int    `json:"value" jsonschema:"Step count, calories, or minutes depending on the category"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes when it differs from value"`
	RecordedAt      string `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Note            string `json:"note,omitempty" jsonschema:"Optional note"`
}

type activityOutput struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Value    int    `json:"value"`
	Unit     string `json:"unit"`
	Message  string `json:"message"`
}

type listActivitiesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter by category"`
	Date     string `json:"date,omitempty" jsonschema:"Only activities on this day (YYYY-MM-DD)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type editActivityInput struct {
	ID              string  `json:"id" jsonschema:"Activity ID or prefix"`
	Value           *int    `json:"value,omitempty" jsonschema:"New value"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" jsonschema:"New duration in minutes"`
	Note            *string `json:"note,omitempty" jsonschema:"New note"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"ID or ID prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type estimateCaloriesInput struct {
	ActivityType    string  `json:"activity_type" jsonschema:"Activity type, case-insensitive (walking, running, cycling, swimming, workout, training, yoga)"`
	DurationMinutes int     `json:"duration_minutes" jsonschema:"Duration in minutes"`
	WeightKg        float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kg, defaults to the stored preference"`
}

type estimateCaloriesOutput struct {
	Calories int     `json:"calories"`
	MET      float64 `json:"met"`
	WeightKg float64 `json:"weight_kg"`
	Message  string  `json:"message"`
}

type goalProgressInput struct {
	Current int `json:"current" jsonschema:"Current measured amount"`
	Goal    int `json:"goal" jsonschema:"Target amount"`
}

type goalProgressOutput struct {
	Progress float64 `json:"progress"`
	Percent  int     `json:"percent"`
}

type emptyInput struct{}

type listWorkoutsInput struct {
	Offset int `json:"offset,omitempty" jsonschema:"Number of workouts to skip"`
	Limit  int `json:"limit,omitempty" jsonschema:"Page size, capped at the configured maximum"`
}

type updatePreferencesInput struct {
	DisplayName      *string  `json:"display_name,omitempty" jsonschema:"Display name"`
	WeightKg         *float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kg"`
	HeightCm         *float64 `json:"height_cm,omitempty" jsonschema:"Body height in cm"`
	DailyStepGoal    *int     `json:"daily_step_goal,omitempty" jsonschema:"Daily step goal"`
	DailyCalorieGoal *int     `json:"daily_calorie_goal,omitempty" jsonschema:"Daily calorie goal"`
	DarkTheme        *bool    `json:"dark_theme,omitempty" jsonschema:"Use the dark theme"`
}

// Tool handlers

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	category := models.ParseCategory(input.Category)
	if category == "" {
		return nil, activityOutput{}, fmt.Errorf("category is required")
	}
	if input.Value < 0 || input.DurationMinutes < 0 {
		return nil, activityOutput{}, fmt.Errorf("value and duration must be non-negative")
	}

	a := models.NewActivity(category, input.Value)
	if input.DurationMinutes > 0 {
		a.WithDuration(input.DurationMinutes)
	}
	if input.RecordedAt != "" {
		t, err := parseTime(input.RecordedAt)
		if err != nil {
			return nil, activityOutput{}, fmt.Errorf("invalid recorded_at: %s", input.RecordedAt)
		}
		a.WithRecordedAt(t)
	}
	if input.Note != "" {
		a.WithNote(input.Note)
	}

	if err := s.tracker.LogActivity(a); err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to log activity: %w", err)
	}

	unit := category.Unit()
	return nil, activityOutput{
		ID:       a.ID.String()[:8],
		Category: string(category),
		Value:    a.Value,
		Unit:     unit,
		Message:  fmt.Sprintf("Logged %s: %d %s (ID: %s)", category, a.Value, unit, a.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListActivities(ctx context.Context, req *mcp.CallToolRequest, input listActivitiesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	filter := storage.ActivityFilter{Limit: input.Limit}
	if input.Category != "" {
		c := models.ParseCategory(input.Category)
		filter.Category = &c
	}
	if input.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date: %s", input.Date)
		}
		filter.From = day
		filter.To = day.AddDate(0, 0, 1)
	}

	activities, err := s.tracker.Activities(filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list activities: %w", err)
	}

	if len(activities) == 0 {
		return nil, map[string]interface{}{"message": "No activities found."}, nil
	}

	return nil, map[string]interface{}{"activities": activities}, nil
}

func (s *Server) handleEditActivity(ctx context.Context, req *mcp.CallToolRequest, input editActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	a, err := s.tracker.EditActivity(input.ID, func(r *models.ActivityRecord) {
		if input.Value != nil {
			r.Value = *input.Value
		}
		if input.DurationMinutes != nil {
			r.DurationMinutes = *input.DurationMinutes
		}
		if input.Note != nil {
			r.Note = *input.Note
		}
	})
	if err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to edit activity: %w", err)
	}

	return nil, activityOutput{
		ID:       a.ID.String()[:8],
		Category: string(a.Category),
		Value:    a.Value,
		Unit:     a.Category.Unit(),
		Message:  fmt.Sprintf("Updated %s (ID: %s)", a.Category, a.ID.String()[:8]),
	}, nil
}

func (s *Server) handleDeleteActivity(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.tracker.DeleteActivity(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete activity: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted activity: %s", input.ID),
	}, nil
}

func (s *Server) handleEstimateCalories(ctx context.Context, req *mcp.CallToolRequest, input estimateCaloriesInput) (*mcp.CallToolResult, estimateCaloriesOutput, error) {
	weight := input.WeightKg
	if weight <= 0 {
		p, err := s.tracker.Preferences()
		if err != nil {
			return nil, estimateCaloriesOutput{}, fmt.Errorf("failed to load preferences: %w", err)
		}
		weight = p.WeightKg
	}

	kcal := fitness.EstimateCalories(input.ActivityType, input.DurationMinutes, weight)
	return nil, estimateCaloriesOutput{
		Calories: kcal,
		MET:      fitness.METFor(input.ActivityType),
		WeightKg: weight,
		Message:  fmt.Sprintf("%d min of %s at %.1f kg ≈ %d kcal", input.DurationMinutes, input.ActivityType, weight, kcal),
	}, nil
}

func (s *Server) handleGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input goalProgressInput) (*mcp.CallToolResult, goalProgressOutput, error) {
	progress := fitness.GoalProgress(input.Current, input.Goal)
	return nil, goalProgressOutput{
		Progress: progress,
		Percent:  fitness.Percent(progress),
	}, nil
}

func (s *Server) handleGetToday(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	d, err := s.tracker.Today(time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return nil, d, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	page, err := s.tracker.Workouts(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return nil, page, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, any, error) {
	w, err := s.tracker.Workout(ctx, input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workout %s: %w", input.ID, err)
	}
	return nil, w, nil
}

func (s *Server) handleGetPreferences(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, models.Preferences, error) {
	p, err := s.tracker.Preferences()
	if err != nil {
		return nil, models.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return nil, p, nil
}

func (s *Server) handleUpdatePreferences(ctx context.Context, req *mcp.CallToolRequest, input updatePreferencesInput) (*mcp.CallToolResult, models.Preferences, error) {
	p, err := s.tracker.UpdatePreferences(func(p *models.Preferences) {
		if input.DisplayName != nil {
			p.DisplayName = *input.DisplayName
		}
		if input.WeightKg != nil {
			p.WeightKg = *input.WeightKg
		}
		if input.HeightCm != nil {
			p.HeightCm = *input.HeightCm
		}
		if input.DailyStepGoal != nil {
			p.DailyStepGoal = *input.DailyStepGoal
		}
		if input.DailyCalorieGoal != nil {
			p.DailyCalorieGoal = *input.DailyCalorieGoal
		}
		if input.DarkTheme != nil {
			p.DarkTheme = *input.DarkTheme
		}
	})
	if err != nil {
		return nil, models.Preferences{}, fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil, p, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}
