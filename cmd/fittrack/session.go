// ABOUTME: CLI commands for device session history.
// ABOUTME: Imports exported session files and lists stored sessions.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/source"
	"github.com/spf13/cobra"
)

var sessionLimit int

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Manage device session history",
	Long: `Import and list raw exercise sessions recorded by a device.

Stored sessions become the primary source for 'fittrack workout list'.

FILE FORMAT (YAML or JSON):

  sessions:
    - title: Evening run
      activity_type: running
      started_at: 2025-05-19T18:00:00Z
      ended_at: 2025-05-19T18:40:00Z
      samples:
        - type: calories_expended
          float_value: 410
          recorded_at: 2025-05-19T18:40:00Z
        - type: heart_rate_bpm
          float_value: 152
          recorded_at: 2025-05-19T18:20:00Z

  Sample types: steps_delta, distance_delta, calories_expended,
  heart_rate_bpm, speed, move_minutes`,
}

var sessionImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sessions from a history file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		sessions, err := source.ParseHistory(data)
		if err != nil {
			return err
		}

		n, err := trk.ImportSessions(sessions)
		if err != nil {
			return fmt.Errorf("import failed after %d sessions: %w", n, err)
		}

		color.Green("✓ Imported %d sessions from %s", n, filename)
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := trk.Sessions(sessionLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			title := s.Title
			if title == "" {
				title = s.ActivityType
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(s.ID.String()[:8]),
				faint.Sprint(s.StartedAt.Local().Format("2006-01-02 15:04")),
				padRight(truncate(title, 24), 24),
				s.EndedAt.Sub(s.StartedAt).Round(time.Second))
		}

		return nil
	},
}

func init() {
	sessionListCmd.Flags().IntVarP(&sessionLimit, "limit", "n", 20, "max number of results")

	sessionCmd.AddCommand(sessionImportCmd)
	sessionCmd.AddCommand(sessionListCmd)
	rootCmd.AddCommand(sessionCmd)
}
