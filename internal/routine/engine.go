package routine

import (
	"context"
	"fmt"
	"time"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/config"
	"github.com/diarselimi/crux/internal/ledger"
)

// Cues delivers best-effort feedback on completions. Implementations swallow
// their own errors; the engine never checks them.
type Cues interface {
	PlayCue(id string)
	Vibrate(pattern []int)
}

// NopCues is the default sink.
type NopCues struct{}

func (NopCues) PlayCue(string) {}
func (NopCues) Vibrate([]int)  {}

// completionPattern mirrors the double-tap buzz on a rewarded completion.
var completionPattern = []int{0, 40, 80, 70}

// Engine owns every mutation of the routine ledger and every derivation over
// it. It is single-goroutine by design; callers await each operation before
// the next.
type Engine struct {
	led  *ledger.Ledger
	cfg  config.Config
	cues Cues
	now  func() time.Time
}

func New(led *ledger.Ledger, cfg config.Config) *Engine {
	return &Engine{led: led, cfg: cfg, cues: NopCues{}, now: time.Now}
}

// WithCues replaces the cue sink.
func (e *Engine) WithCues(c Cues) *Engine {
	e.cues = c
	return e
}

// WithClock fixes the engine's notion of now. Tests use this to pin days.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) Ledger() *ledger.Ledger { return e.led }
func (e *Engine) Config() config.Config  { return e.cfg }

// Today is the current day key in the configured timezone.
func (e *Engine) Today() calendar.Key {
	return calendar.KeyOf(e.now().In(e.cfg.Location()))
}

// Checked reports an exercise completion flag for a day.
func (e *Engine) Checked(item string, day calendar.Key) bool {
	return e.led.Bool(ledger.ExerciseKey(item, day))
}

func (e *Engine) setChecked(ctx context.Context, item string, day calendar.Key, v bool) error {
	return e.led.SetBool(ctx, ledger.ExerciseKey(item, day), v)
}

// Toggle flips an exercise for today and applies the coupled rules: a locked
// or used grace token refuses the toggle, completing mobility invalidates an
// active grace token, and a rewarded first completion records the time of
// day and fires the completion cue. The day's XP cache is reconciled before
// returning.
func (e *Engine) Toggle(ctx context.Context, item string) (bool, error) {
	if !IsExercise(item) {
		return false, fmt.Errorf("unknown exercise %q", item)
	}
	if item == ExRecovery {
		return e.toggleRecovery(ctx)
	}
	day := e.Today()
	if item == ExSkip {
		if st := e.SkipState(day); st.Disabled {
			return false, fmt.Errorf("grace token is %s", st.Label)
		}
	}
	if item == ExPE && e.MaintenanceMode() {
		return false, fmt.Errorf("power-endurance is off while maintenance mode is on")
	}

	next := !e.Checked(item, day)
	if err := e.setChecked(ctx, item, day, next); err != nil {
		return false, err
	}

	if item == ExMobility && next && e.Checked(ExSkip, day) {
		// The grace token self-invalidates once the minimum is done.
		if err := e.setChecked(ctx, ExSkip, day, false); err != nil {
			return false, err
		}
	}

	if next && rewardItems[item] {
		if err := e.recordCompletionTime(ctx, day); err != nil {
			return false, err
		}
		e.cues.Vibrate(completionPattern)
		e.cues.PlayCue("complete")
	}

	if err := e.ReconcileXP(ctx, day); err != nil {
		return false, err
	}
	return next, nil
}

// toggleRecovery flips today's recovery flag. Turning it on clears the bonus
// work for the day; recovery and training credit are mutually exclusive.
func (e *Engine) toggleRecovery(ctx context.Context) (bool, error) {
	day := e.Today()
	next := !e.Checked(ExRecovery, day)
	if err := e.setChecked(ctx, ExRecovery, day, next); err != nil {
		return false, err
	}
	if next {
		for _, item := range recoveryExclusive {
			if err := e.setChecked(ctx, item, day, false); err != nil {
				return false, err
			}
		}
	}
	if err := e.ReconcileXP(ctx, day); err != nil {
		return false, err
	}
	return next, nil
}

// recordCompletionTime stores minutes-since-midnight for the day's first
// rewarded completion. Write-once per day.
func (e *Engine) recordCompletionTime(ctx context.Context, day calendar.Key) error {
	key := ledger.DoneAtKey(day)
	if _, ok := e.led.Get(key); ok {
		return nil
	}
	return e.led.SetInt(ctx, key, calendar.MinutesSinceMidnight(e.now().In(e.cfg.Location())))
}

// NoteChecked reports a session-note selection for a day.
func (e *Engine) NoteChecked(group, id string, day calendar.Key) bool {
	return e.led.Bool(ledger.NoteKey(group, id, day))
}

// ToggleNote flips a session note for today. Within limiters, "none" and the
// concrete options are mutually exclusive; feel is single-select.
func (e *Engine) ToggleNote(ctx context.Context, group, id string) error {
	opts := noteOptions(group)
	if opts == nil {
		return fmt.Errorf("unknown note group %q", group)
	}
	found := false
	for _, o := range opts {
		if o.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown note %q in group %q", id, group)
	}

	day := e.Today()
	next := !e.NoteChecked(group, id, day)

	if group == NoteGroupLimiters && id == NoteNone && next {
		for _, o := range opts {
			if err := e.led.SetBool(ctx, ledger.NoteKey(group, o.ID, day), o.ID == NoteNone); err != nil {
				return err
			}
		}
		return nil
	}
	if group == NoteGroupLimiters && id != NoteNone && next {
		if err := e.led.SetBool(ctx, ledger.NoteKey(group, NoteNone, day), false); err != nil {
			return err
		}
	}
	if group == NoteGroupFeel && next {
		for _, o := range opts {
			if err := e.led.SetBool(ctx, ledger.NoteKey(group, o.ID, day), o.ID == id); err != nil {
				return err
			}
		}
		return nil
	}
	return e.led.SetBool(ctx, ledger.NoteKey(group, id, day), next)
}

// BodyCheck returns today's body-check selection, empty when unset.
func (e *Engine) BodyCheck(day calendar.Key) string {
	v, _ := e.led.Get(ledger.BodyCheckKey(day))
	return v
}

// SetBodyCheck records the single-select body check for today.
func (e *Engine) SetBodyCheck(ctx context.Context, id string) error {
	for _, b := range BodyChecks {
		if b.ID == id {
			return e.led.Set(ctx, ledger.BodyCheckKey(e.Today()), id)
		}
	}
	return fmt.Errorf("unknown body check %q", id)
}

// BodySteer is the set of exercise tags today's body check steers away from.
func (e *Engine) BodySteer(day calendar.Key) map[string]bool {
	sel := e.BodyCheck(day)
	out := map[string]bool{}
	for _, b := range BodyChecks {
		if b.ID == sel {
			for _, tag := range b.Tags {
				out[tag] = true
			}
		}
	}
	return out
}

// MaintenanceMode reports the low-load mode flag.
func (e *Engine) MaintenanceMode() bool {
	return e.led.Bool(ledger.KeyMaintenance)
}

// ToggleMaintenance flips maintenance mode. Entering it drops today's
// power-endurance; the mode excludes it.
func (e *Engine) ToggleMaintenance(ctx context.Context) (bool, error) {
	next := !e.MaintenanceMode()
	if err := e.led.SetBool(ctx, ledger.KeyMaintenance, next); err != nil {
		return false, err
	}
	if next {
		day := e.Today()
		if err := e.setChecked(ctx, ExPE, day, false); err != nil {
			return false, err
		}
		if err := e.ReconcileXP(ctx, day); err != nil {
			return false, err
		}
	}
	return next, nil
}

// CommitmentAccepted reports whether the one-time commitment was made.
func (e *Engine) CommitmentAccepted() bool {
	return e.led.Bool(ledger.KeyCommitment)
}

// CommitPhrase is the exact text required to accept the commitment.
const CommitPhrase = "I commit"

// AcceptCommitment records the commitment flag when phrase matches exactly.
func (e *Engine) AcceptCommitment(ctx context.Context, phrase string) error {
	if phrase != CommitPhrase {
		return fmt.Errorf("commitment requires typing %q", CommitPhrase)
	}
	return e.led.SetBool(ctx, ledger.KeyCommitment, true)
}

// StreakNoteSeen reports whether the one-time streak-care note was shown.
func (e *Engine) StreakNoteSeen() bool {
	return e.led.Bool(ledger.KeyStreakNoteSeen)
}

// MarkStreakNoteSeen records that the streak-care note was shown.
func (e *Engine) MarkStreakNoteSeen(ctx context.Context) error {
	return e.led.SetBool(ctx, ledger.KeyStreakNoteSeen, true)
}

// ResetToday zeroes the current day: exercise flags, recovery and grace,
// body check, all note selections, and the day's XP cache. Other days are
// untouched.
func (e *Engine) ResetToday(ctx context.Context) error {
	day := e.Today()
	for _, item := range sessionItems {
		if err := e.setChecked(ctx, item, day, false); err != nil {
			return err
		}
	}
	if err := e.setChecked(ctx, ExRecovery, day, false); err != nil {
		return err
	}
	if err := e.setChecked(ctx, ExSkip, day, false); err != nil {
		return err
	}
	if err := e.led.Remove(ctx, ledger.BodyCheckKey(day)); err != nil {
		return err
	}
	for _, o := range NoteLimiters {
		if err := e.led.SetBool(ctx, ledger.NoteKey(NoteGroupLimiters, o.ID, day), false); err != nil {
			return err
		}
	}
	for _, o := range NoteFeels {
		if err := e.led.SetBool(ctx, ledger.NoteKey(NoteGroupFeel, o.ID, day), false); err != nil {
			return err
		}
	}
	return e.led.SetInt(ctx, ledger.XPKey(day), 0)
}

// ClearAll removes every fact under the crux namespace.
func (e *Engine) ClearAll(ctx context.Context) error {
	return e.led.RemoveMany(ctx, e.led.Keys())
}
