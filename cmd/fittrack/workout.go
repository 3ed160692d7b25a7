// ABOUTME: CLI commands for browsing workout summaries.
// ABOUTME: Supports paginated list and show subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutOffset int
	workoutLimit  int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Browse workout summaries",
	Long: `Browse workout summaries with intensity and effort score.

Summaries come from the first source that has data:

  1. Device sessions imported with 'fittrack session import'
  2. The remote exercise catalog (config set catalog_url)
  3. The built-in catalog, always available

COMMANDS:

  list     List a page of workouts
  show     View one workout in detail`,
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	Long: `List a page of workout summaries.

Examples:
  fittrack workout list
  fittrack workout list --offset 10 --limit 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := trk.Workouts(cmd.Context(), workoutOffset, workoutLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		faint := color.New(color.Faint)
		if page.Fallback {
			color.Yellow("No live workout data, showing the %s", page.Source)
		}

		if len(page.Items) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		for _, w := range page.Items {
			fmt.Printf("%s %s %s %3d min %4d kcal  %s\n",
				faint.Sprint(w.ID[:8]),
				faint.Sprint(w.StartedAt.Local().Format("2006-01-02 15:04")),
				padRight(truncate(w.Title, 24), 24),
				w.DurationMinutes,
				w.Calories,
				intensityLabel(w.Intensity))
		}
		fmt.Println(faint.Sprintf("%d-%d of %d from %s",
			page.Offset+1, page.Offset+len(page.Items), page.Total, page.Source))

		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := trk.Workout(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Println(color.New(color.Bold).Sprint(w.Title))
		fmt.Printf("  %s %s\n", faint.Sprint("ID:        "), w.ID)
		fmt.Printf("  %s %s\n", faint.Sprint("Activity:  "), w.Activity)
		fmt.Printf("  %s %s\n", faint.Sprint("Started:   "), w.StartedAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("  %s %d min\n", faint.Sprint("Duration:  "), w.DurationMinutes)
		fmt.Printf("  %s %d kcal\n", faint.Sprint("Calories:  "), w.Calories)
		if w.Steps > 0 {
			fmt.Printf("  %s %d\n", faint.Sprint("Steps:     "), w.Steps)
		}
		if w.DistanceKm != nil {
			fmt.Printf("  %s %.2f km\n", faint.Sprint("Distance:  "), *w.DistanceKm)
		}
		if w.AvgPace != nil {
			fmt.Printf("  %s %.1f min/km\n", faint.Sprint("Pace:      "), *w.AvgPace)
		}
		if w.AvgHeartRate != nil {
			fmt.Printf("  %s %d bpm avg", faint.Sprint("Heart rate:"), *w.AvgHeartRate)
			if w.MaxHeartRate != nil {
				fmt.Printf(", %d max", *w.MaxHeartRate)
			}
			fmt.Println()
		}
		fmt.Printf("  %s %s\n", faint.Sprint("Intensity: "), intensityLabel(w.Intensity))
		fmt.Printf("  %s %d / 100\n", faint.Sprint("Effort:    "), w.EffortScore)
		if w.Notes != nil && *w.Notes != "" {
			fmt.Printf("  %s %s\n", faint.Sprint("Notes:     "), *w.Notes)
		}

		return nil
	},
}

func intensityLabel(i models.Intensity) string {
	switch i {
	case models.IntensityHigh:
		return color.RedString(string(i))
	case models.IntensityModerate:
		return color.YellowString(string(i))
	default:
		return color.GreenString(string(i))
	}
}

func init() {
	workoutListCmd.Flags().IntVar(&workoutOffset, "offset", 0, "number of workouts to skip")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 10, "page size")

	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	rootCmd.AddCommand(workoutCmd)
}
