// ABOUTME: CLI command for editing a logged activity.
// ABOUTME: Only the flags given are changed.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	editValue    int
	editDuration int
	editNote     string
)

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Aliases: []string{"e"},
	Short:   "Edit a logged activity",
	Long: `Change the value, duration or note of a logged activity.

EXAMPLES:

  fittrack edit abc12345 --value 5200
  fittrack edit abc1 --duration 40 --note "hill repeats"
  fittrack edit abc1 --note ""               # Clear the note`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("value") && !flags.Changed("duration") && !flags.Changed("note") {
			return fmt.Errorf("nothing to change: use --value, --duration or --note")
		}

		a, err := trk.EditActivity(args[0], func(r *models.ActivityRecord) {
			if flags.Changed("value") {
				r.Value = editValue
			}
			if flags.Changed("duration") {
				r.DurationMinutes = editDuration
			}
			if flags.Changed("note") {
				r.Note = editNote
			}
		})
		if err != nil {
			return fmt.Errorf("failed to edit activity: %w", err)
		}

		color.Green("✓ Updated %s", a.Category)
		fmt.Printf("  %s %d %s\n",
			color.New(color.Faint).Sprint(a.ID.String()[:8]),
			a.Value, a.Category.Unit())

		return nil
	},
}

func init() {
	editCmd.Flags().IntVar(&editValue, "value", 0, "new value")
	editCmd.Flags().IntVarP(&editDuration, "duration", "d", 0, "new duration in minutes")
	editCmd.Flags().StringVar(&editNote, "note", "", "new note")
	rootCmd.AddCommand(editCmd)
}
