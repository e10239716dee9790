package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/routine"
	"github.com/diarselimi/crux/internal/ui"
)

var noteCmd = &cobra.Command{
	Use:   "note <limiters|feel> [id]",
	Short: "Toggle a session note",
	Long: "Toggle a session note for today. Within limiters, \"none\" excludes " +
		"the concrete options; feel is single-select. Without an id, lists the group.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			group := strings.ToLower(args[0])
			if len(args) == 1 {
				return printNoteGroup(eng, group)
			}
			id := strings.ToLower(args[1])
			if err := eng.ToggleNote(ctx, group, id); err != nil {
				return err
			}
			return printNoteGroup(eng, group)
		})
	},
}

func printNoteGroup(eng *routine.Engine, group string) error {
	var opts []routine.NoteOption
	switch group {
	case routine.NoteGroupLimiters:
		opts = routine.NoteLimiters
	case routine.NoteGroupFeel:
		opts = routine.NoteFeels
	default:
		return fmt.Errorf("unknown note group %q", group)
	}
	theme := ui.DefaultTheme
	day := eng.Today()
	for _, o := range opts {
		mark := "( )"
		if eng.NoteChecked(group, o.ID, day) {
			mark = "(x)"
		}
		fmt.Printf("%s %-10s %s\n", mark, o.ID, theme.Muted.Render(o.Label))
	}
	return nil
}

var bodyCmd = &cobra.Command{
	Use:   "body [id]",
	Short: "Record today's body check",
	Long:  "Record the single-select body check for today. Without an id, lists the options.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			theme := ui.DefaultTheme
			day := eng.Today()
			if len(args) == 1 {
				if err := eng.SetBodyCheck(ctx, strings.ToLower(args[0])); err != nil {
					return err
				}
			}
			selected := eng.BodyCheck(day)
			for _, b := range routine.BodyChecks {
				mark := "( )"
				if b.ID == selected {
					mark = "(x)"
				}
				fmt.Printf("%s %-10s %s\n", mark, b.ID, theme.Muted.Render(b.Label))
			}
			return nil
		})
	},
}
