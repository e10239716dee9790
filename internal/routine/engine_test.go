package routine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/config"
	"github.com/diarselimi/crux/internal/ledger"
)

// Thursday 2024-07-18 10:00 local.
var testNow = time.Date(2024, 7, 18, 10, 0, 0, 0, time.Local)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	led, err := ledger.Load(context.Background(), ledger.NewMemoryStore())
	require.NoError(t, err)
	return New(led, config.Default()).WithClock(func() time.Time { return testNow })
}

func mustCheck(t *testing.T, e *Engine, item string, day calendar.Key, v bool) {
	t.Helper()
	require.NoError(t, e.Ledger().SetBool(context.Background(), ledger.ExerciseKey(item, day), v))
}

type recordingCues struct {
	cues     []string
	patterns [][]int
}

func (r *recordingCues) PlayCue(id string)     { r.cues = append(r.cues, id) }
func (r *recordingCues) Vibrate(pattern []int) { r.patterns = append(r.patterns, pattern) }

func TestToggleRecordsCompletionTimeOnce(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()

	on, err := e.Toggle(ctx, ExMobility)
	require.NoError(t, err)
	assert.True(t, on)

	minutes, ok := e.Ledger().Int(ledger.DoneAtKey(day))
	require.True(t, ok)
	assert.Equal(t, 10*60, minutes)

	// A later completion the same day must not move the timestamp.
	_, err = e.Toggle(ctx, ExArc)
	require.NoError(t, err)
	minutes, _ = e.Ledger().Int(ledger.DoneAtKey(day))
	assert.Equal(t, 10*60, minutes)
}

func TestToggleFiresCompletionCue(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	rec := &recordingCues{}
	e.WithCues(rec)

	_, err := e.Toggle(ctx, ExMobility)
	require.NoError(t, err)
	assert.Equal(t, []string{"complete"}, rec.cues)
	require.Len(t, rec.patterns, 1)

	// Un-toggling is silent.
	_, err = e.Toggle(ctx, ExMobility)
	require.NoError(t, err)
	assert.Len(t, rec.cues, 1)
}

func TestToggleUnknownExercise(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Toggle(context.Background(), "bench-press")
	assert.Error(t, err)
}

func TestRecoveryClearsBonusWork(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()
	for _, item := range []string{ExArc, ExPE, ExSupport, ExShoulder, ExFlex} {
		mustCheck(t, e, item, day, true)
	}

	on, err := e.Toggle(ctx, ExRecovery)
	require.NoError(t, err)
	assert.True(t, on)
	for _, item := range []string{ExArc, ExPE, ExSupport, ExShoulder, ExFlex} {
		assert.False(t, e.Checked(item, day), "%s should be cleared by recovery", item)
	}

	xp, _ := e.Ledger().Int(ledger.XPKey(day))
	assert.Equal(t, 1, xp, "recovery day caps XP at the maintenance credit")
}

func TestMobilityInvalidatesActiveGrace(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()

	_, err := e.Toggle(ctx, ExSkip)
	require.NoError(t, err)
	assert.True(t, e.Checked(ExSkip, day))

	_, err = e.Toggle(ctx, ExMobility)
	require.NoError(t, err)
	assert.False(t, e.Checked(ExSkip, day), "grace self-invalidates once the minimum is done")
}

func TestGraceToggleRefusedWhenLockedOrUsed(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()

	mustCheck(t, e, ExMobility, day, true)
	_, err := e.Toggle(ctx, ExSkip)
	assert.ErrorContains(t, err, "Locked")

	mustCheck(t, e, ExMobility, day, false)
	tuesday, err2 := calendar.AddDays(day, -2, time.Local)
	require.NoError(t, err2)
	mustCheck(t, e, ExSkip, tuesday, true)
	_, err = e.Toggle(ctx, ExSkip)
	assert.ErrorContains(t, err, "Used")
}

func TestLimiterNoneClearsSiblings(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()

	require.NoError(t, e.ToggleNote(ctx, NoteGroupLimiters, "grip"))
	require.NoError(t, e.ToggleNote(ctx, NoteGroupLimiters, "power"))
	require.NoError(t, e.ToggleNote(ctx, NoteGroupLimiters, NoteNone))

	assert.True(t, e.NoteChecked(NoteGroupLimiters, NoteNone, day))
	assert.False(t, e.NoteChecked(NoteGroupLimiters, "grip", day))
	assert.False(t, e.NoteChecked(NoteGroupLimiters, "power", day))

	// Selecting a concrete limiter clears "none" again.
	require.NoError(t, e.ToggleNote(ctx, NoteGroupLimiters, "endurance"))
	assert.False(t, e.NoteChecked(NoteGroupLimiters, NoteNone, day))
	assert.True(t, e.NoteChecked(NoteGroupLimiters, "endurance", day))
}

func TestFeelIsSingleSelect(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()

	require.NoError(t, e.ToggleNote(ctx, NoteGroupFeel, "easy"))
	require.NoError(t, e.ToggleNote(ctx, NoteGroupFeel, "sloppy"))

	assert.False(t, e.NoteChecked(NoteGroupFeel, "easy", day))
	assert.True(t, e.NoteChecked(NoteGroupFeel, "sloppy", day))
}

func TestBodyCheckValidation(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.SetBodyCheck(ctx, "fingers"))
	assert.Equal(t, "fingers", e.BodyCheck(e.Today()))
	assert.True(t, e.BodySteer(e.Today())["crimp"])

	assert.Error(t, e.SetBodyCheck(ctx, "knees"))
}

func TestMaintenanceDropsPowerEndurance(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()
	mustCheck(t, e, ExPE, day, true)

	on, err := e.ToggleMaintenance(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.False(t, e.Checked(ExPE, day))

	off, err := e.ToggleMaintenance(ctx)
	require.NoError(t, err)
	assert.False(t, off)
}

func TestMaintenanceBlocksPowerEnduranceToggle(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	_, err := e.ToggleMaintenance(ctx)
	require.NoError(t, err)

	_, err = e.Toggle(ctx, ExPE)
	assert.Error(t, err)
	assert.False(t, e.Checked(ExPE, e.Today()))
}

func TestCommitmentPhrase(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	assert.Error(t, e.AcceptCommitment(ctx, "i commit"))
	assert.False(t, e.CommitmentAccepted())
	require.NoError(t, e.AcceptCommitment(ctx, CommitPhrase))
	assert.True(t, e.CommitmentAccepted())
}

func TestResetTodayLeavesOtherDays(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()
	yesterday, err := calendar.AddDays(day, -1, time.Local)
	require.NoError(t, err)

	mustCheck(t, e, ExMobility, day, true)
	mustCheck(t, e, ExMobility, yesterday, true)
	require.NoError(t, e.SetBodyCheck(ctx, "elbows"))
	require.NoError(t, e.ToggleNote(ctx, NoteGroupFeel, "controlled"))
	require.NoError(t, e.ReconcileXP(ctx, day))

	require.NoError(t, e.ResetToday(ctx))

	assert.False(t, e.Checked(ExMobility, day))
	assert.True(t, e.Checked(ExMobility, yesterday), "reset must not touch other days")
	assert.Equal(t, "", e.BodyCheck(day))
	assert.False(t, e.NoteChecked(NoteGroupFeel, "controlled", day))
	xp, ok := e.Ledger().Int(ledger.XPKey(day))
	require.True(t, ok)
	assert.Zero(t, xp)
}

func TestClearAllEmptiesNamespace(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	mustCheck(t, e, ExMobility, e.Today(), true)
	require.NoError(t, e.AcceptCommitment(ctx, CommitPhrase))

	require.NoError(t, e.ClearAll(ctx))
	assert.Empty(t, e.Ledger().Keys())
}

func TestWeeklyChallengeIsStableWithinWeek(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	first, err := e.WeeklyChallenge(ctx)
	require.NoError(t, err)
	assert.Contains(t, Challenges, first)

	// Later in the same week, the stored pick wins.
	e.WithClock(func() time.Time { return testNow.AddDate(0, 0, 2) }) // Saturday
	second, err := e.WeeklyChallenge(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuoteOfDayIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	day := e.Today()
	q1 := e.QuoteOfDay(day)
	q2 := e.QuoteOfDay(day)
	assert.Equal(t, q1, q2)
	assert.NotEmpty(t, q1.Text)
}

func TestSummaryCountsLastSessions(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	loc := time.Local

	for i := 0; i < 9; i++ {
		day, err := calendar.AddDays(e.Today(), -i, loc)
		require.NoError(t, err)
		require.NoError(t, e.Ledger().SetBool(ctx, ledger.NoteKey(NoteGroupLimiters, "grip", day), true))
	}

	sum := e.Summary()
	require.Len(t, sum.Sessions, 7)
	for _, stat := range sum.Limiters {
		if stat.ID == "grip" {
			assert.Equal(t, 7, stat.Count)
			assert.Len(t, stat.Timeline, 7)
		}
	}
}
