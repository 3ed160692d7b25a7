// ABOUTME: Tests for ActivityRecord and ActivityCategory.
// ABOUTME: Validates category parsing, units, constructor, and builders.
package models

import (
	"testing"
	"time"
)

func TestCategoryUnit(t *testing.T) {
	tests := []struct {
		category ActivityCategory
		wantUnit string
	}{
		{CategorySteps, "steps"},
		{CategoryCalories, "kcal"},
		{CategoryRunning, "min"},
		{ActivityCategory("climbing"), "min"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.Unit(); got != tt.wantUnit {
				t.Errorf("Unit() = %s, want %s", got, tt.wantUnit)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if got := ParseCategory("  Running "); got != CategoryRunning {
		t.Errorf("ParseCategory = %q, want running", got)
	}
	if !ParseCategory("YOGA").IsKnown() {
		t.Error("expected yoga to be known")
	}
	if ParseCategory("bouldering").IsKnown() {
		t.Error("expected bouldering to be free-form")
	}
}

func TestNewActivity(t *testing.T) {
	a := NewActivity(CategorySteps, 4200)

	if a.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if a.Value != 4200 {
		t.Errorf("Value = %d, want 4200", a.Value)
	}
	if a.DurationMinutes != 0 {
		t.Errorf("DurationMinutes = %d, want 0", a.DurationMinutes)
	}
	if a.RecordedAt.IsZero() {
		t.Error("expected RecordedAt to be set")
	}
}

func TestNewActivityClampsNegative(t *testing.T) {
	a := NewActivity(CategoryCalories, -50).WithDuration(-5)
	if a.Value != 0 || a.DurationMinutes != 0 {
		t.Errorf("expected negatives clamped to zero, got value=%d duration=%d", a.Value, a.DurationMinutes)
	}
}

func TestActivityBuilders(t *testing.T) {
	at := time.Date(2025, 3, 1, 7, 30, 0, 0, time.UTC)
	a := NewActivity(CategoryRunning, 30).WithRecordedAt(at).WithNote("tempo").WithDuration(32)

	if !a.RecordedAt.Equal(at) {
		t.Errorf("RecordedAt = %v, want %v", a.RecordedAt, at)
	}
	if a.Note != "tempo" {
		t.Errorf("Note = %q, want tempo", a.Note)
	}
	if a.Minutes() != 32 {
		t.Errorf("Minutes() = %d, want 32", a.Minutes())
	}
}

func TestActivityMinutes(t *testing.T) {
	if got := NewActivity(CategoryYoga, 45).Minutes(); got != 45 {
		t.Errorf("yoga Minutes() = %d, want 45", got)
	}
	if got := NewActivity(CategorySteps, 8000).Minutes(); got != 0 {
		t.Errorf("steps Minutes() = %d, want 0", got)
	}
}
