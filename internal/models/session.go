// ABOUTME: Session and Sample models for raw device history data.
// ABOUTME: A session is a time-bounded exercise event; samples are its typed measurements.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SampleType tags what a raw sample measures.
type SampleType string

const (
	SampleStepsDelta       SampleType = "steps_delta"
	SampleDistanceDelta    SampleType = "distance_delta"
	SampleCaloriesExpended SampleType = "calories_expended"
	SampleHeartRate        SampleType = "heart_rate_bpm"
	SampleSpeed            SampleType = "speed"
	SampleMoveMinutes      SampleType = "move_minutes"
)

// AllSampleTypes returns all valid sample types.
var AllSampleTypes = []SampleType{
	SampleStepsDelta, SampleDistanceDelta, SampleCaloriesExpended,
	SampleHeartRate, SampleSpeed, SampleMoveMinutes,
}

// IsValidSampleType checks if a string is a valid sample type.
func IsValidSampleType(s string) bool {
	for _, st := range AllSampleTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Session is one contiguous exercise event recorded by a device.
type Session struct {
	ID           uuid.UUID `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	ActivityType string    `json:"activity_type" yaml:"activity_type"`
	StartedAt    time.Time `json:"started_at" yaml:"started_at"`
	EndedAt      time.Time `json:"ended_at" yaml:"ended_at"`
	Notes        string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Samples      []Sample  `json:"samples,omitempty" yaml:"samples,omitempty"` // Populated on import/export
}

// NewSession creates a Session with a generated UUID.
func NewSession(activityType string, start, end time.Time) *Session {
	return &Session{
		ID:           uuid.New(),
		ActivityType: activityType,
		StartedAt:    start,
		EndedAt:      end,
	}
}

// WithTitle sets the display title.
func (s *Session) WithTitle(title string) *Session {
	s.Title = title
	return s
}

// WithNotes sets notes on the session.
func (s *Session) WithNotes(notes string) *Session {
	s.Notes = notes
	return s
}

// Contains reports whether t lies within the session window (inclusive).
func (s *Session) Contains(t time.Time) bool {
	return !t.Before(s.StartedAt) && !t.After(s.EndedAt)
}

// Sample is one raw measurement. Devices report either a float or an
// integer value depending on the data type.
type Sample struct {
	ID         uuid.UUID  `json:"id" yaml:"id"`
	SessionID  uuid.UUID  `json:"session_id" yaml:"session_id"`
	Type       SampleType `json:"type" yaml:"type"`
	FloatValue *float64   `json:"float_value,omitempty" yaml:"float_value,omitempty"`
	IntValue   *int64     `json:"int_value,omitempty" yaml:"int_value,omitempty"`
	RecordedAt time.Time  `json:"recorded_at" yaml:"recorded_at"`
}

// NewFloatSample creates a float-valued sample for a session.
func NewFloatSample(sessionID uuid.UUID, t SampleType, v float64, at time.Time) Sample {
	return Sample{ID: uuid.New(), SessionID: sessionID, Type: t, FloatValue: &v, RecordedAt: at}
}

// NewIntSample creates an integer-valued sample for a session.
func NewIntSample(sessionID uuid.UUID, t SampleType, v int64, at time.Time) Sample {
	return Sample{ID: uuid.New(), SessionID: sessionID, Type: t, IntValue: &v, RecordedAt: at}
}

// Value returns the numeric value, preferring the float field.
// The second result is false when the sample carries no value.
func (s Sample) Value() (float64, bool) {
	switch {
	case s.FloatValue != nil:
		return *s.FloatValue, true
	case s.IntValue != nil:
		return float64(*s.IntValue), true
	default:
		return 0, false
	}
}
