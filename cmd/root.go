package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/config"
	"github.com/diarselimi/crux/internal/ledger"
	"github.com/diarselimi/crux/internal/notify"
	"github.com/diarselimi/crux/internal/routine"
	"github.com/diarselimi/crux/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "crux",
	Short: "Climbing routine tracker",
	Long:  "Track the daily climbing routine: exercises, streak, XP, notes and the session timer.",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.AddCommand(
		doneCmd, recoveryCmd, graceCmd, noteCmd, bodyCmd,
		statusCmd, summaryCmd, timerCmd, remindCmd, resetCmd,
		maintenanceCmd, commitCmd, exportCmd, versionCmd,
	)
}

// termCues adapts the terminal bell to exercise-completion feedback;
// vibration patterns have no terminal equivalent.
type termCues struct {
	ui.TermCues
}

func (termCues) Vibrate([]int) {}

// withEngine opens the ledger, runs fn against a fresh engine, and, on
// success, reconciles the reminder schedule with the possibly-changed
// completion history.
func withEngine(fn func(ctx context.Context, eng *routine.Engine) error) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := ledger.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	led, err := ledger.Load(ctx, store)
	if err != nil {
		return err
	}

	eng := routine.New(led, cfg).WithCues(termCues{})
	if err := fn(ctx, eng); err != nil {
		return err
	}

	if cfg.Reminder.Enabled {
		sched := notify.NewScheduler(led, notify.LocalCapability{}, cfg.DefaultReminderMinutes(), cfg.Location())
		if err := sched.Ensure(ctx, eng.Today()); err != nil {
			return fmt.Errorf("reconcile reminder schedule: %w", err)
		}
	}
	return nil
}
