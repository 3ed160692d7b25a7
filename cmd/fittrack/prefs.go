// ABOUTME: CLI commands for the user profile and daily goals.
// ABOUTME: Supports show, set and reset subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/prefs"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:     "prefs",
	Aliases: []string{"p", "profile"},
	Short:   "Manage profile and goals",
	Long: `Show and change your profile and daily goals.

KEYS:

  display_name         Name shown on the dashboard
  weight_kg            Body weight, used for BMI and calorie estimates
  height_cm            Body height, used for BMI
  daily_step_goal      Steps per day
  daily_calorie_goal   kcal per day
  dark_theme           true or false

Weight, height and goals must be positive.

EXAMPLES:

  fittrack prefs show
  fittrack prefs set weight_kg 72.5
  fittrack prefs set daily_step_goal 8000
  fittrack prefs reset`,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := trk.Preferences()
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}

		faint := color.New(color.Faint)
		for _, key := range prefs.Keys {
			v, err := prefs.Format(p, key)
			if err != nil {
				return err
			}
			if v == "" {
				v = faint.Sprint("(not set)")
			}
			fmt.Printf("%s %s\n", padRight(key, 20), v)
		}
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := prefStore.Set(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to set %s: %w", args[0], err)
		}

		v, _ := prefs.Format(p, args[0])
		color.Green("✓ Set %s = %s", args[0], v)
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := prefStore.Reset(); err != nil {
			return fmt.Errorf("failed to reset preferences: %w", err)
		}
		color.Yellow("✓ Preferences reset to defaults")
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
	rootCmd.AddCommand(prefsCmd)
}
