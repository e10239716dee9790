package cmd

import (
	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/timer"
	"github.com/diarselimi/crux/internal/ui"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the session stopwatch",
	Long: "Open the interactive session stopwatch. Space pauses and resumes, " +
		"r resets, m cycles the cue mode (free, intervals, silent), q quits.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tm := timer.New().WithCues(ui.TermCues{})
		return ui.RunTimer(tm)
	},
}
