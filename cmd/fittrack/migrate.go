// ABOUTME: CLI command for copying all data into another SQLite database.
// ABOUTME: Used to move the data directory or seed a fresh install.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo    string
	migrateForce bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to another database",
	Long: `Copy every activity, session and sample into another fittrack database.

IMPORTANT:

  - The target is created if it does not exist
  - A non-empty target is refused unless --force is given
  - Duplicate IDs in the target cause an error

USAGE:

  fittrack migrate --to ~/backup/fittrack.db

Afterwards point fittrack at the new location with:

  fittrack config set data_dir ~/backup`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo == "" {
			return fmt.Errorf("--to is required")
		}
		target := config.ExpandPath(migrateTo)
		if target == dbConn.Path() {
			return fmt.Errorf("target is the current database: %s", target)
		}

		nonEmpty, err := storage.IsFileNonEmpty(target)
		if err != nil {
			return fmt.Errorf("failed to inspect target: %w", err)
		}
		if nonEmpty && !migrateForce {
			return fmt.Errorf("target %s already exists, use --force to merge into it", target)
		}

		dst, err := storage.Open(target)
		if err != nil {
			return fmt.Errorf("failed to open target: %w", err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(dbConn, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated to %s", target)
		fmt.Printf("  %d activities, %d sessions, %d samples\n",
			summary.Activities, summary.Sessions, summary.Samples)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "path of the target database")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "copy into a non-empty target")
	rootCmd.AddCommand(migrateCmd)
}
