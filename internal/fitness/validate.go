// ABOUTME: Validation of profile values before they are persisted.
package fitness

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidWeight = errors.New("invalid weight")
	ErrInvalidHeight = errors.New("invalid height")
	ErrInvalidGoal   = errors.New("invalid goal")
)

const (
	maxWeightKg = 500.0
	maxHeightCm = 300.0
)

// ValidateWeight accepts finite weights in (0, 500] kg.
func ValidateWeight(kg float64) error {
	if !isFinite(kg) || kg <= 0 || kg > maxWeightKg {
		return fmt.Errorf("%w: %.1f kg", ErrInvalidWeight, kg)
	}
	return nil
}

// ValidateHeight accepts finite heights in (0, 300] cm.
func ValidateHeight(cm float64) error {
	if !isFinite(cm) || cm <= 0 || cm > maxHeightCm {
		return fmt.Errorf("%w: %.1f cm", ErrInvalidHeight, cm)
	}
	return nil
}

// ValidateGoal accepts strictly positive goals.
func ValidateGoal(goal int) error {
	if goal <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGoal, goal)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
