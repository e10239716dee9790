// Package notify owns the daily reminder: a thin beeep wrapper for delivery
// and a scheduler that adapts the reminder time to when the user actually
// trains.
package notify

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/ledger"
)

// historyWindow is how many trailing days of completion times feed the
// target derivation.
const historyWindow = 14

// minSamples gates the adaptive target; with fewer samples the configured
// default applies.
const minSamples = 3

// roundStep rounds the derived target to a 5-minute grid.
const roundStep = 5

// Content is the notification payload registered with the platform.
type Content struct {
	Title string
	Body  string
}

// Capability abstracts the platform's repeating-notification API.
// PermissionGranted is re-checked on every evaluation; Cancel of an unknown
// handle must be tolerated by callers.
type Capability interface {
	PermissionGranted() bool
	ScheduleDaily(ctx context.Context, hour, minute int, content Content) (handle string, err error)
	Cancel(ctx context.Context, handle string) error
}

// Scheduler derives the reminder target from completion history and keeps
// the registered schedule in sync with it.
type Scheduler struct {
	led            *ledger.Ledger
	cap            Capability
	defaultMinutes int
	loc            *time.Location
}

func NewScheduler(led *ledger.Ledger, capability Capability, defaultMinutes int, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{led: led, cap: capability, defaultMinutes: defaultMinutes, loc: loc}
}

// recentCompletionMinutes gathers the minutes-since-midnight samples for the
// trailing window ending at today. Malformed entries are skipped.
func (s *Scheduler) recentCompletionMinutes(today calendar.Key) []int {
	var out []int
	for i := 0; i < historyWindow; i++ {
		day, err := calendar.AddDays(today, -i, s.loc)
		if err != nil {
			break
		}
		if m, ok := s.led.Int(ledger.DoneAtKey(day)); ok {
			out = append(out, m)
		}
	}
	return out
}

// roundToNearest rounds the true mean; truncating it first would pull
// fractional means like 602.67 down a grid step.
func roundToNearest(v float64, step int) int {
	return int(math.Round(v/float64(step))) * step
}

// TargetMinutes derives the reminder time: the mean of recent completion
// times rounded to the nearest 5 minutes once enough history exists, the
// default until then.
func (s *Scheduler) TargetMinutes(today calendar.Key) int {
	samples := s.recentCompletionMinutes(today)
	if len(samples) < minSamples {
		return s.defaultMinutes
	}
	sum := 0
	for _, m := range samples {
		sum += m
	}
	return roundToNearest(float64(sum)/float64(len(samples)), roundStep)
}

// Ensure reconciles the registered schedule with the derived target. When
// the target is unchanged and a handle exists it does nothing; otherwise it
// cancels the old registration (silently tolerating an already-gone handle),
// registers the new daily trigger and persists handle and target. Without
// permission it is a no-op.
func (s *Scheduler) Ensure(ctx context.Context, today calendar.Key) error {
	if !s.cap.PermissionGranted() {
		return nil
	}

	target := s.TargetMinutes(today)
	storedTarget, _ := s.led.Int(ledger.KeyNotifyTime)
	storedHandle, hasHandle := s.led.Get(ledger.KeyNotifyID)
	if hasHandle && storedTarget == target {
		return nil
	}

	if hasHandle {
		// A handle for an already-fired or cleaned-up schedule is fine.
		_ = s.cap.Cancel(ctx, storedHandle)
	}

	title, body := FormatDailyPrompt()
	handle, err := s.cap.ScheduleDaily(ctx, target/60, target%60, Content{Title: title, Body: body})
	if err != nil {
		return err
	}
	if err := s.led.Set(ctx, ledger.KeyNotifyID, handle); err != nil {
		return err
	}
	return s.led.SetInt(ctx, ledger.KeyNotifyTime, target)
}

// LocalCapability is the CLI's stand-in for a platform notifier: handles are
// uuids and the actual firing is done by the reminder daemon reading the
// persisted target.
type LocalCapability struct{}

func (LocalCapability) PermissionGranted() bool { return true }

func (LocalCapability) ScheduleDaily(_ context.Context, _, _ int, _ Content) (string, error) {
	return uuid.NewString(), nil
}

func (LocalCapability) Cancel(context.Context, string) error { return nil }
