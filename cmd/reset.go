package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/routine"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset today's entries",
	Long: "Zero out today's exercises, notes, body check and XP. With --all, " +
		"wipe the entire history after confirmation.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			if !resetAll {
				if err := eng.ResetToday(ctx); err != nil {
					return err
				}
				fmt.Println("Today reset.")
				return nil
			}

			fmt.Print("This deletes all history, streak and XP. Type \"delete\" to confirm: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
			if strings.TrimSpace(line) != "delete" {
				fmt.Println("Aborted.")
				return nil
			}
			if err := eng.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Println("All data cleared.")
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "wipe all history, not just today")
}
