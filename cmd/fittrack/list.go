// ABOUTME: CLI command for listing logged activities.
// ABOUTME: Supports filtering by category, by today, and limiting results.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listCategory string
	listLimit    int
	listToday    bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List logged activities",
	Long: `List recent activities, most recent first.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  CATEGORY  VALUE  UNIT  (NOTE)

  The ID is an 8-character prefix you can use with edit and delete.

EXAMPLES:

  fittrack list                      # Last 20 activities
  fittrack list --category steps     # Only steps
  fittrack list --today              # Everything logged today
  fittrack list -c running -n 50     # Last 50 runs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := storage.ActivityFilter{Limit: listLimit}
		if listCategory != "" {
			c := models.ParseCategory(listCategory)
			filter.Category = &c
		}
		if listToday {
			now := time.Now()
			filter.From = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			filter.To = filter.From.AddDate(0, 0, 1)
		}

		activities, err := trk.Activities(filter)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			note := ""
			if a.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(a.Note, 30))
			}
			fmt.Printf("%s %s %s %d %s%s\n",
				faint.Sprint(a.ID.String()[:8]),
				faint.Sprint(a.RecordedAt.Local().Format("2006-01-02 15:04")),
				padRight(string(a.Category), 10),
				a.Value,
				a.Category.Unit(),
				note)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	listCmd.Flags().BoolVar(&listToday, "today", false, "only show activities logged today")
	rootCmd.AddCommand(listCmd)
}
