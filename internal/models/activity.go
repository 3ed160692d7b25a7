// ABOUTME: ActivityRecord model and ActivityCategory enum for logged activities.
// ABOUTME: Categories decide the unit of the numeric value (steps, kcal, minutes).
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityCategory is the kind of a logged activity. Known categories are
// listed below; anything else is accepted as a free-form category.
type ActivityCategory string

const (
	CategorySteps    ActivityCategory = "steps"
	CategoryCalories ActivityCategory = "calories"
	CategoryWorkout  ActivityCategory = "workout"
	CategoryWalking  ActivityCategory = "walking"
	CategoryRunning  ActivityCategory = "running"
	CategoryCycling  ActivityCategory = "cycling"
	CategorySwimming ActivityCategory = "swimming"
	CategoryYoga     ActivityCategory = "yoga"
)

// AllCategories returns the known activity categories.
var AllCategories = []ActivityCategory{
	CategorySteps, CategoryCalories, CategoryWorkout,
	CategoryWalking, CategoryRunning, CategoryCycling, CategorySwimming, CategoryYoga,
}

// ParseCategory normalizes user input into a category.
func ParseCategory(s string) ActivityCategory {
	return ActivityCategory(strings.ToLower(strings.TrimSpace(s)))
}

// IsKnown reports whether the category is one of the fixed set.
func (c ActivityCategory) IsKnown() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Unit returns the unit the record's Value is expressed in.
func (c ActivityCategory) Unit() string {
	switch c {
	case CategorySteps:
		return "steps"
	case CategoryCalories:
		return "kcal"
	default:
		return "min"
	}
}

// IsDurationBased reports whether Value holds minutes of exercise.
func (c ActivityCategory) IsDurationBased() bool {
	return c != CategorySteps && c != CategoryCalories
}

// ActivityRecord represents a single user-logged activity.
type ActivityRecord struct {
	ID              uuid.UUID        `json:"id" yaml:"id"`
	Category        ActivityCategory `json:"category" yaml:"category"`
	Value           int              `json:"value" yaml:"value"`
	RecordedAt      time.Time        `json:"recorded_at" yaml:"recorded_at"`
	Note            string           `json:"note,omitempty" yaml:"note,omitempty"`
	DurationMinutes int              `json:"duration_minutes" yaml:"duration_minutes"`
	CreatedAt       time.Time        `json:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" yaml:"updated_at"`
}

// NewActivity creates an ActivityRecord with a generated UUID and current timestamp.
// Negative values are stored as zero.
func NewActivity(category ActivityCategory, value int) *ActivityRecord {
	now := time.Now()
	return &ActivityRecord{
		ID:         uuid.New(),
		Category:   category,
		Value:      max(value, 0),
		RecordedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WithRecordedAt sets a custom occurrence timestamp.
func (a *ActivityRecord) WithRecordedAt(t time.Time) *ActivityRecord {
	a.RecordedAt = t
	return a
}

// WithNote sets the free-text note.
func (a *ActivityRecord) WithNote(note string) *ActivityRecord {
	a.Note = note
	return a
}

// WithDuration sets the duration in minutes.
func (a *ActivityRecord) WithDuration(minutes int) *ActivityRecord {
	a.DurationMinutes = max(minutes, 0)
	return a
}

// Minutes returns the exercise duration of the record. Duration-based
// categories fall back to Value when DurationMinutes was not set.
func (a *ActivityRecord) Minutes() int {
	if a.DurationMinutes > 0 {
		return a.DurationMinutes
	}
	if a.Category.IsDurationBased() {
		return a.Value
	}
	return 0
}
