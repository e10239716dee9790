package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/routine"
)

var commitCmd = &cobra.Command{
	Use:   "commit <phrase>",
	Short: "Accept the routine commitment",
	Long: "Accept the one-time commitment by typing the exact phrase. The " +
		"routine is fully usable either way; this is a ritual, not a gate.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			if eng.CommitmentAccepted() {
				fmt.Println("Already committed.")
				return nil
			}
			if err := eng.AcceptCommitment(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Println("Committed. See you tomorrow.")
			return nil
		})
	},
}
