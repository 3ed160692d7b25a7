// ABOUTME: CLI command for estimating calories burned.
// ABOUTME: Uses MET values and the stored or given body weight.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/spf13/cobra"
)

var estimateWeight float64

var estimateCmd = &cobra.Command{
	Use:   "estimate <activity> <minutes>",
	Short: "Estimate calories burned",
	Long: `Estimate calories burned as MET × weight (kg) × hours.

MET VALUES:

  walking 3.5, running 8.0, cycling 6.0, swimming 7.0,
  workout 5.0, training 5.0, yoga 2.5, anything else 4.0

EXAMPLES:

  fittrack estimate running 30
  fittrack estimate cycling 45 --weight 80`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid minutes: %s", args[1])
		}

		weight := estimateWeight
		if weight <= 0 {
			p, err := trk.Preferences()
			if err != nil {
				return fmt.Errorf("failed to load preferences: %w", err)
			}
			weight = p.WeightKg
		}

		kcal := fitness.EstimateCalories(args[0], minutes, weight)
		fmt.Printf("%d kcal (%d min of %s at %.1f kg, MET %.1f)\n",
			kcal, minutes, args[0], weight, fitness.METFor(args[0]))
		return nil
	},
}

func init() {
	estimateCmd.Flags().Float64VarP(&estimateWeight, "weight", "w", 0, "body weight in kg (default: stored preference)")
	rootCmd.AddCommand(estimateCmd)
}
