// ABOUTME: Preferences model holding the user profile and goals.
// ABOUTME: DefaultPreferences supplies the value of every field never written.
package models

// Preferences is the user's profile and app configuration.
type Preferences struct {
	DisplayName      string  `json:"display_name" yaml:"display_name"`
	WeightKg         float64 `json:"weight_kg" yaml:"weight_kg"`
	HeightCm         float64 `json:"height_cm" yaml:"height_cm"`
	DailyStepGoal    int     `json:"daily_step_goal" yaml:"daily_step_goal"`
	DailyCalorieGoal int     `json:"daily_calorie_goal" yaml:"daily_calorie_goal"`
	DarkTheme        bool    `json:"dark_theme" yaml:"dark_theme"`
	FirstLaunch      bool    `json:"first_launch" yaml:"first_launch"`
	LoggedIn         bool    `json:"logged_in" yaml:"logged_in"`
}

const (
	DefaultWeightKg         = 70.0
	DefaultHeightCm         = 170.0
	DefaultDailyStepGoal    = 10000
	DefaultDailyCalorieGoal = 2000
)

// DefaultPreferences returns the preferences of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		WeightKg:         DefaultWeightKg,
		HeightCm:         DefaultHeightCm,
		DailyStepGoal:    DefaultDailyStepGoal,
		DailyCalorieGoal: DefaultDailyCalorieGoal,
		FirstLaunch:      true,
	}
}
