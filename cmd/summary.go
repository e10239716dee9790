package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/routine"
	"github.com/diarselimi/crux/internal/ui"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show note trends over the last sessions",
	Long:  "Aggregate limiter and feel selections across the last seven noted sessions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			theme := ui.DefaultTheme
			sum := eng.Summary()
			if len(sum.Sessions) == 0 {
				fmt.Println(theme.Muted.Render("No noted sessions yet."))
				return nil
			}
			fmt.Println(theme.Title.Render(fmt.Sprintf("Last %d noted sessions", len(sum.Sessions))))
			fmt.Println()
			printStats(theme, "Limiters", sum.Limiters)
			fmt.Println()
			printStats(theme, "Feel", sum.Feels)
			return nil
		})
	},
}

func printStats(theme ui.Theme, heading string, stats []routine.NoteStat) {
	fmt.Println(theme.Label.Render(heading))
	for _, s := range stats {
		if s.Count == 0 {
			continue
		}
		var tl strings.Builder
		for _, hit := range s.Timeline {
			if hit {
				tl.WriteString("●")
			} else {
				tl.WriteString("·")
			}
		}
		fmt.Printf("  %-22s %2dx  %s\n", s.Label, s.Count, theme.Muted.Render(tl.String()))
	}
}
