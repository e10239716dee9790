package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/routine"
	"github.com/diarselimi/crux/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's routine state",
	Long: "Show the day header, the quote, the streak and grace state, XP " +
		"progression and the week's challenge.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			theme := ui.DefaultTheme
			day := eng.Today()

			if !eng.CommitmentAccepted() {
				fmt.Println(theme.Hint.Render("Commitment pending. Run: crux commit \"I commit\""))
			}

			t, err := time.ParseInLocation("2006-01-02", string(day), eng.Config().Location())
			header := string(day)
			if err == nil {
				header = t.Format("Monday, Jan 2")
			}
			fmt.Println(theme.Title.Render(header))

			quote := eng.QuoteOfDay(day)
			fmt.Println(theme.Muted.Render("\"" + quote.Text + "\""))
			fmt.Println()

			streak := eng.Streak(day)
			unit := "days"
			if streak == 1 {
				unit = "day"
			}
			fmt.Printf("%s %s\n", theme.Label.Render("Streak"),
				theme.Value.Render(fmt.Sprintf("%d %s", streak, unit)))

			skip := eng.SkipState(day)
			fmt.Printf("%s %s\n", theme.Label.Render("Grace"), theme.Value.Render(skip.Label))

			if streak >= 2 && !eng.StreakNoteSeen() {
				fmt.Println(theme.Hint.Render("The streak survives one missed day per week via grace; it's there to be used."))
				if err := eng.MarkStreakNoteSeen(ctx); err != nil {
					return err
				}
			}

			info := eng.Progress()
			fmt.Printf("%s %s\n", theme.Label.Render("Level"), theme.Value.Render(info.Label()))
			fmt.Printf("       %s\n", progressBar(info.Progress, 24, theme))

			if challenge, err := eng.WeeklyChallenge(ctx); err == nil {
				fmt.Printf("%s %s\n", theme.Label.Render("Challenge"), theme.Value.Render(challenge))
			}

			if eng.MaintenanceMode() {
				fmt.Println(theme.Hint.Render("Maintenance mode: power-endurance is off this block."))
			}
			if eng.SoftLanding(day) {
				fmt.Println(theme.Hint.Render("Easy week. Showing up is the whole job right now."))
			}
			if steer := eng.BodySteer(day); len(steer) > 0 {
				var tags []string
				for tag := range steer {
					tags = append(tags, tag)
				}
				fmt.Println(theme.Hint.Render("Body check flagged: go gentle on " + strings.Join(tags, ", ") + "."))
			}
			return nil
		})
	},
}

// progressBar renders a fixed-width bar for a 0..1 fraction.
func progressBar(frac float64, width int, theme ui.Theme) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	return theme.Success.Render(strings.Repeat("█", filled)) +
		theme.Muted.Render(strings.Repeat("░", width-filled))
}
