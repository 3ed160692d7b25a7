// ABOUTME: CLI command for logging activities.
// ABOUTME: Counters take a raw value; timed categories take minutes.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	addAt       string
	addNote     string
	addDuration int
)

var addCmd = &cobra.Command{
	Use:     "add <category> <value>",
	Aliases: []string{"a", "log"},
	Short:   "Log an activity",
	Long: `Log an activity for today or a given time.

CATEGORIES:

  steps       value is a step count
  calories    value is kcal burned
  walking, running, cycling, swimming, yoga, workout
              value is minutes of exercise

Any other label is accepted and treated as minutes.

Examples:
  fittrack add steps 4200
  fittrack add running 30 --note "tempo run"
  fittrack add calories 350 --at "2025-01-31 08:00"
  fittrack add steps 6000 --duration 55`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := models.ParseCategory(args[0])
		if category == "" {
			return fmt.Errorf("category is required")
		}

		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		a := models.NewActivity(category, value)

		if addAt != "" {
			t, err := parseTime(addAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", addAt)
			}
			a.WithRecordedAt(t)
		}
		if addDuration > 0 {
			a.WithDuration(addDuration)
		}
		if addNote != "" {
			a.WithNote(addNote)
		}

		if err := trk.LogActivity(a); err != nil {
			return fmt.Errorf("failed to log activity: %w", err)
		}

		color.Green("✓ Logged %s", category)
		fmt.Printf("  %s %d %s\n",
			color.New(color.Faint).Sprint(a.ID.String()[:8]),
			a.Value, category.Unit())

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	addCmd.Flags().StringVar(&addAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	addCmd.Flags().StringVar(&addNote, "note", "", "note for the activity")
	addCmd.Flags().IntVarP(&addDuration, "duration", "d", 0, "duration in minutes when it differs from value")
	rootCmd.AddCommand(addCmd)
}
