// ABOUTME: Goal progress calculation.
// ABOUTME: Produces a completion fraction clamped to [0, 1].
package fitness

// GoalProgress returns current/goal clamped to [0, 1], or 0 when goal <= 0.
func GoalProgress(current, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return clamp(float64(current)/float64(goal), 0, 1)
}

// Percent formats a progress fraction as a whole percentage.
func Percent(progress float64) int {
	return int(clamp(progress, 0, 1)*100 + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
