// ABOUTME: CLI commands for viewing and changing fittrack configuration.
// ABOUTME: Settings persist to ~/.config/fittrack/config.json.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change fittrack configuration.

KEYS:

  data_dir        Where fittrack.db and prefs/ live (default ~/.local/share/fittrack)
  catalog_url     Base URL of a remote exercise catalog serving GET /exercises
  catalog_file    YAML file replacing the built-in workout catalog
  max_page_size   Cap on workout pages (default 50)
  log_level       debug, info, warn or error (default info)
  metrics_addr    Address for the Prometheus endpoint of 'fittrack mcp', e.g. :9090

Set a key to "" to restore its default.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Println(faint.Sprint(config.GetConfigPath()))
		for _, key := range config.Keys {
			v, err := c.Get(key)
			if err != nil {
				return err
			}
			if v == "" {
				v = faint.Sprint("(default)")
			}
			fmt.Printf("%s %s\n", padRight(key, 14), v)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := c.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Set %s", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
