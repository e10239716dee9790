package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/config"
	"github.com/diarselimi/crux/internal/ledger"
	"github.com/diarselimi/crux/internal/notify"
	"github.com/diarselimi/crux/internal/routine"
	"github.com/diarselimi/crux/internal/schedule"
)

var remindDaemon bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show or run the adaptive daily reminder",
	Long: "Show the reminder target derived from recent completion times. " +
		"With --daemon, stay in the foreground and fire the reminder daily.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if remindDaemon {
			return runReminderDaemon()
		}
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			cfg := eng.Config()
			sched := notify.NewScheduler(eng.Ledger(), notify.LocalCapability{},
				cfg.DefaultReminderMinutes(), cfg.Location())
			target := sched.TargetMinutes(eng.Today())
			fmt.Printf("Reminder at %02d:%02d daily", target/60, target%60)
			if !cfg.Reminder.Enabled {
				fmt.Print(" (disabled in config)")
			}
			fmt.Println()
			return nil
		})
	},
}

func init() {
	remindCmd.Flags().BoolVar(&remindDaemon, "daemon", false, "run in the foreground and deliver the reminder daily")
}

// runReminderDaemon blocks until interrupted, delivering the daily prompt at
// the adaptive target. The target is re-derived before every arm so new
// completion history shifts tomorrow's reminder without a restart.
func runReminderDaemon() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Reminder.Enabled {
		return fmt.Errorf("reminders are disabled in config")
	}

	store, err := ledger.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loc := cfg.Location()
	target := func() int {
		led, err := ledger.Load(ctx, store)
		if err != nil {
			return cfg.DefaultReminderMinutes()
		}
		sched := notify.NewScheduler(led, notify.LocalCapability{}, cfg.DefaultReminderMinutes(), loc)
		return sched.TargetMinutes(calendar.KeyOf(time.Now().In(loc)))
	}

	fmt.Printf("Reminder daemon running, next at %02d:%02d\n", target()/60, target()%60)
	schedule.Run(ctx, loc, target, func() {
		title, body := notify.FormatDailyPrompt()
		if err := notify.Info(title, body); err != nil {
			fmt.Fprintf(os.Stderr, "crux: notify: %v\n", err)
		}
	})
	return nil
}
