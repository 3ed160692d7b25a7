// ABOUTME: Body mass index calculation and categorization.
package fitness

// BMI returns weight / height² (height in metres), or 0 for non-positive or
// non-finite input.
func BMI(weightKg, heightCm float64) float64 {
	if !isFinite(weightKg) || !isFinite(heightCm) || weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	bmi := weightKg / (m * m)
	if !isFinite(bmi) {
		return 0
	}
	return bmi
}

// BMICategory returns the WHO label for a BMI value, or "" for 0.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
