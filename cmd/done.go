package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/routine"
	"github.com/diarselimi/crux/internal/ui"
)

// doneCmd toggles an exercise for today. Without arguments it lists today's
// sheet.
var doneCmd = &cobra.Command{
	Use:   "done [exercise]",
	Short: "Toggle an exercise for today",
	Long: "Toggle an exercise completion for today. Exercises: " +
		strings.Join(routine.Exercises, ", ") + ".",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			if len(args) == 0 {
				printSheet(eng)
				return nil
			}
			item := strings.ToLower(strings.TrimSpace(args[0]))
			on, err := eng.Toggle(ctx, item)
			if err != nil {
				return err
			}
			theme := ui.DefaultTheme
			state := theme.Muted.Render("cleared")
			if on {
				state = theme.Success.Render("done")
			}
			fmt.Printf("%s %s\n", routine.ExerciseLabels[item], state)
			return nil
		})
	},
}

// recoveryCmd and graceCmd are sugar over done for the two non-session items.
var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Toggle today's recovery day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleShort(routine.ExRecovery, "Recovery day")
	},
}

var graceCmd = &cobra.Command{
	Use:   "grace",
	Short: "Spend the weekly grace token on today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleShort(routine.ExSkip, "Grace")
	},
}

func toggleShort(item, label string) error {
	return withEngine(func(ctx context.Context, eng *routine.Engine) error {
		on, err := eng.Toggle(ctx, item)
		if err != nil {
			return err
		}
		theme := ui.DefaultTheme
		if on {
			fmt.Printf("%s %s\n", label, theme.Success.Render("on"))
		} else {
			fmt.Printf("%s %s\n", label, theme.Muted.Render("off"))
		}
		return nil
	})
}

func printSheet(eng *routine.Engine) {
	theme := ui.DefaultTheme
	day := eng.Today()
	fmt.Println(theme.Title.Render("Today - " + string(day)))
	for _, item := range routine.Exercises {
		mark := "[ ]"
		if eng.Checked(item, day) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %-10s %s", mark, item, theme.Muted.Render(routine.ExerciseLabels[item]))
		if item == routine.ExSkip {
			st := eng.SkipState(day)
			line += " " + theme.Hint.Render("("+st.Label+")")
		}
		fmt.Println(line)
	}
}
