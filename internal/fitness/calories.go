// ABOUTME: MET-based calorie estimation for logged activities.
// ABOUTME: Unknown activity types fall back to a default coefficient.
package fitness

import (
	"math"
	"strings"
)

// DefaultMET is used for activity types missing from the table.
const DefaultMET = 4.0

// metTable maps lowercase activity types to their MET coefficient.
var metTable = map[string]float64{
	"walking":  3.5,
	"running":  8.0,
	"cycling":  6.0,
	"swimming": 7.0,
	"workout":  5.0,
	"training": 5.0,
	"yoga":     2.5,
}

// METFor returns the MET coefficient for an activity type, case-insensitively.
func METFor(activityType string) float64 {
	if met, ok := metTable[strings.ToLower(strings.TrimSpace(activityType))]; ok {
		return met
	}
	return DefaultMET
}

// EstimateCalories returns MET × weight × hours, truncated to an integer.
// Non-positive duration, a non-positive or non-finite weight, or a result
// that does not fit in an int yields 0.
func EstimateCalories(activityType string, durationMinutes int, weightKg float64) int {
	if durationMinutes <= 0 || !isFinite(weightKg) || weightKg <= 0 {
		return 0
	}
	kcal := METFor(activityType) * weightKg * (float64(durationMinutes) / 60)
	if !isFinite(kcal) || kcal <= 0 || kcal >= math.MaxInt64 {
		return 0
	}
	return int(kcal)
}
