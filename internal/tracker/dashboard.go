// ABOUTME: Daily dashboard built from logged activities and goal preferences.
// ABOUTME: Watch republishes the dashboard whenever its inputs change.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// Dashboard is the state shown for one day.
type Dashboard struct {
	Date        time.Time `json:"date"`
	DisplayName string    `json:"display_name,omitempty"`

	Steps        int     `json:"steps"`
	StepGoal     int     `json:"step_goal"`
	StepProgress float64 `json:"step_progress"`

	// Calories is logged calories plus estimates for timed activities.
	Calories          int     `json:"calories"`
	LoggedCalories    int     `json:"logged_calories"`
	EstimatedCalories int     `json:"estimated_calories"`
	CalorieGoal       int     `json:"calorie_goal"`
	CalorieProgress   float64 `json:"calorie_progress"`

	ActiveMinutes int     `json:"active_minutes"`
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmi_category,omitempty"`

	Activities []*models.ActivityRecord `json:"activities"`
}

// Today builds the dashboard for the calendar day containing now.
func (t *Tracker) Today(now time.Time) (Dashboard, error) {
	p, err := t.Preferences()
	if err != nil {
		return Dashboard{}, fmt.Errorf("load preferences: %w", err)
	}

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	activities, err := t.repo.ListActivities(storage.ActivityFilter{From: from, To: to})
	if err != nil {
		t.log.WithError(err).Error("failed to load today's activities")
		return Dashboard{}, fmt.Errorf("list activities: %w", err)
	}

	d := Dashboard{
		Date:        from,
		DisplayName: p.DisplayName,
		StepGoal:    p.DailyStepGoal,
		CalorieGoal: p.DailyCalorieGoal,
		Activities:  activities,
	}

	for _, a := range activities {
		switch a.Category {
		case models.CategorySteps:
			d.Steps += a.Value
		case models.CategoryCalories:
			d.LoggedCalories += a.Value
		default:
			minutes := a.Minutes()
			d.ActiveMinutes += minutes
			d.EstimatedCalories += fitness.EstimateCalories(string(a.Category), minutes, p.WeightKg)
		}
	}

	d.Calories = d.LoggedCalories + d.EstimatedCalories
	d.StepProgress = fitness.GoalProgress(d.Steps, d.StepGoal)
	d.CalorieProgress = fitness.GoalProgress(d.Calories, d.CalorieGoal)
	d.BMI = fitness.BMI(p.WeightKg, p.HeightCm)
	d.BMICategory = fitness.BMICategory(d.BMI)

	return d, nil
}

// Watch emits the current dashboard and then a fresh one after every
// preference or activity change, until ctx is done. A slow reader only
// sees the newest dashboard.
func (t *Tracker) Watch(ctx context.Context) (<-chan Dashboard, error) {
	first, err := t.Today(t.clock())
	if err != nil {
		return nil, err
	}

	var prefCh <-chan models.Preferences
	cancelPrefs := func() {}
	if t.prefs != nil {
		prefCh, cancelPrefs = t.prefs.Subscribe()
	}
	changes, cancelChanges := t.subscribeChanges()

	out := make(chan Dashboard, 1)
	out <- first

	go func() {
		defer close(out)
		defer cancelPrefs()
		defer cancelChanges()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-prefCh:
				if !ok {
					return
				}
			case <-changes:
			}

			d, err := t.Today(t.clock())
			if err != nil {
				t.log.WithError(err).Warn("failed to refresh dashboard")
				continue
			}

			select {
			case <-out:
			default:
			}
			out <- d
		}
	}()

	return out, nil
}

func (t *Tracker) subscribeChanges() (<-chan struct{}, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	ch := make(chan struct{}, 1)
	t.watches[id] = ch

	return ch, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.watches, id)
	}
}

// notify wakes every watcher without blocking.
func (t *Tracker) notify() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, ch := range t.watches {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
