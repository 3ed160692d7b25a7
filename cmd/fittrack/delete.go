// ABOUTME: CLI command for deleting logged activities.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a logged activity",
	Long: `Delete an activity by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'fittrack list' output.

EXAMPLES:

  fittrack delete abc12345                    # Delete by 8-char prefix
  fittrack rm abc1                            # Short prefix (if unique)

CAUTION:

  This permanently deletes the activity. There is no undo.
  If the prefix matches multiple activities, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		a, err := trk.Activity(idOrPrefix)
		if err != nil {
			return fmt.Errorf("activity not found: %s: %w", idOrPrefix, err)
		}

		if err := trk.DeleteActivity(a.ID.String()); err != nil {
			return fmt.Errorf("failed to delete activity: %w", err)
		}

		color.Yellow("✗ Deleted %s", a.Category)
		fmt.Printf("  %s %d %s\n",
			color.New(color.Faint).Sprint(a.ID.String()[:8]),
			a.Value, a.Category.Unit())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
