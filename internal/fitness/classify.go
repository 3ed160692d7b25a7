// ABOUTME: Intensity classification, effort scoring and pace for workouts.
// ABOUTME: Thresholds and weights are empirical and must stay unchanged.
package fitness

import (
	"math"

	"github.com/harperreed/fittrack/internal/models"
)

const (
	highHeartRate          = 150.0
	highCaloriesPerMin     = 8.0
	moderateCaloriesPerMin = 5.0
	moderateSteps          = 4000

	minEffort = 10
	maxEffort = 100
)

// CaloriesPerMinute returns calories/minutes, or 0 for a non-positive duration.
func CaloriesPerMinute(calories, minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	return float64(calories) / float64(minutes)
}

// ClassifyIntensity applies the ordered rules; the first match wins.
func ClassifyIntensity(avgHeartRate *float64, caloriesPerMinute float64, steps int) models.Intensity {
	switch {
	case avgHeartRate != nil && *avgHeartRate > highHeartRate:
		return models.IntensityHigh
	case caloriesPerMinute >= highCaloriesPerMin:
		return models.IntensityHigh
	case caloriesPerMinute >= moderateCaloriesPerMin:
		return models.IntensityModerate
	case steps >= moderateSteps:
		return models.IntensityModerate
	default:
		return models.IntensityLight
	}
}

// EffortScore summarizes exertion as an integer in [10, 100].
func EffortScore(minutes, calories, steps int, distanceMeters float64, avgHeartRate *float64) int {
	if minutes <= 0 {
		minutes = 1
	}
	m := float64(minutes)

	score := CaloriesPerMinute(calories, minutes)*10 +
		float64(steps)/(m*12) +
		distanceMeters/(m*40)
	if avgHeartRate != nil {
		score += *avgHeartRate / 2
	}

	if math.IsNaN(score) {
		return minEffort
	}
	return int(clamp(math.Round(score), minEffort, maxEffort))
}

// AveragePace returns minutes per km, or nil unless both inputs are positive.
func AveragePace(durationMinutes int, distanceKm float64) *float64 {
	if durationMinutes <= 0 || distanceKm <= 0 {
		return nil
	}
	pace := float64(durationMinutes) / distanceKm
	return &pace
}
