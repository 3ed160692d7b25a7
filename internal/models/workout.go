// ABOUTME: WorkoutSummary and SessionMetrics models for derived session data.
// ABOUTME: Summaries are computed per request and never persisted.
package models

import "time"

// Intensity is the human-readable label assigned to a workout.
type Intensity string

const (
	IntensityHigh     Intensity = "High intensity"
	IntensityModerate Intensity = "Moderate effort"
	IntensityLight    Intensity = "Light session"
)

// SessionMetrics accumulates the raw measurements of one session.
type SessionMetrics struct {
	DurationMinutes int
	Calories        float64
	Steps           int
	DistanceMeters  float64
	AvgHeartRate    *float64
	MaxHeartRate    *float64
	AvgSpeed        *float64
	MoveMinutes     int
}

// WorkoutSummary describes one exercise session for display.
type WorkoutSummary struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Activity        string    `json:"activity" yaml:"activity"`
	StartedAt       time.Time `json:"started_at" yaml:"started_at"`
	EndedAt         time.Time `json:"ended_at" yaml:"ended_at"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
	Calories        int       `json:"calories" yaml:"calories"`
	Steps           int       `json:"steps" yaml:"steps"`
	DistanceKm      *float64  `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
	Notes           *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	Intensity       Intensity `json:"intensity" yaml:"intensity"`
	EffortScore     int       `json:"effort_score" yaml:"effort_score"`
	AvgPace         *float64  `json:"avg_pace_min_per_km,omitempty" yaml:"avg_pace_min_per_km,omitempty"`
	AvgHeartRate    *int      `json:"avg_heart_rate,omitempty" yaml:"avg_heart_rate,omitempty"`
	MaxHeartRate    *int      `json:"max_heart_rate,omitempty" yaml:"max_heart_rate,omitempty"`
}
