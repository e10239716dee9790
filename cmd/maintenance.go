package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/routine"
)

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Toggle maintenance mode",
	Long: "Toggle maintenance mode. While on, power-endurance is dropped from " +
		"the routine and any recorded PE for today is cleared.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			on, err := eng.ToggleMaintenance(ctx)
			if err != nil {
				return err
			}
			if on {
				fmt.Println("Maintenance mode on.")
			} else {
				fmt.Println("Maintenance mode off.")
			}
			return nil
		})
	},
}
