// ABOUTME: CLI command showing today's dashboard.
// ABOUTME: Renders step and calorie goal progress bars plus BMI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/spf13/cobra"
)

const progressWidth = 20

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t", "dash"},
	Short:   "Show today's progress",
	Long: `Show today's steps and calories against your daily goals.

Calories combine what you logged directly with MET estimates for timed
activities (walking, running, ...) at your stored body weight.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := trk.Today(time.Now())
		if err != nil {
			return fmt.Errorf("failed to build dashboard: %w", err)
		}

		faint := color.New(color.Faint)
		title := "Today"
		if d.DisplayName != "" {
			title = fmt.Sprintf("Today for %s", d.DisplayName)
		}
		fmt.Printf("%s\n\n", color.New(color.Bold).Sprintf("%s (%s)", title, d.Date.Format("Mon Jan 2")))

		fmt.Printf("  %s %s %d / %d\n",
			padRight("Steps", 9), progressBar(d.StepProgress), d.Steps, d.StepGoal)
		fmt.Printf("  %s %s %d / %d kcal\n",
			padRight("Calories", 9), progressBar(d.CalorieProgress), d.Calories, d.CalorieGoal)
		if d.EstimatedCalories > 0 {
			fmt.Printf("  %s\n", faint.Sprintf("%s %d logged + %d estimated", padRight("", 9+progressWidth+3), d.LoggedCalories, d.EstimatedCalories))
		}
		fmt.Printf("  %s %d min\n", padRight("Active", 9), d.ActiveMinutes)
		if d.BMI > 0 {
			fmt.Printf("  %s %.1f %s\n", padRight("BMI", 9), d.BMI, faint.Sprintf("(%s)", d.BMICategory))
		}

		if len(d.Activities) > 0 {
			fmt.Println()
			for _, a := range d.Activities {
				fmt.Printf("  %s %s %s %d %s\n",
					faint.Sprint(a.ID.String()[:8]),
					faint.Sprint(a.RecordedAt.Local().Format("15:04")),
					padRight(string(a.Category), 10),
					a.Value, a.Category.Unit())
			}
		}

		return nil
	},
}

// progressBar renders a fixed-width bar with the percentage, e.g. [#####-----]  50%.
func progressBar(progress float64) string {
	pct := fitness.Percent(progress)
	filled := pct * progressWidth / 100
	bar := strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled)
	if pct >= 100 {
		bar = color.GreenString(bar)
	}
	return fmt.Sprintf("[%s] %3d%%", bar, pct)
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
