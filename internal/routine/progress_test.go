package routine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/ledger"
)

func TestDailyXPWeights(t *testing.T) {
	e := newTestEngine(t)
	day := e.Today()

	mustCheck(t, e, ExMobility, day, true)
	mustCheck(t, e, ExArc, day, true)
	mustCheck(t, e, ExPE, day, true)
	mustCheck(t, e, ExSupport, day, true)
	assert.Equal(t, 1+2+3+1, e.DailyXP(day))

	mustCheck(t, e, ExFlex, day, true)
	assert.Equal(t, 8, e.DailyXP(day))

	// Shoulder is bonus-only, no XP.
	mustCheck(t, e, ExShoulder, day, true)
	assert.Equal(t, 8, e.DailyXP(day))
}

func TestDailyXPRecoveryCaps(t *testing.T) {
	e := newTestEngine(t)
	day := e.Today()
	mustCheck(t, e, ExMobility, day, true)
	mustCheck(t, e, ExPE, day, true)
	mustCheck(t, e, ExRecovery, day, true)
	assert.Equal(t, 1, e.DailyXP(day))
}

func TestReconcileXPOverwritesStaleCache(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	day := e.Today()

	require.NoError(t, e.Ledger().SetInt(ctx, ledger.XPKey(day), 99))
	mustCheck(t, e, ExMobility, day, true)
	require.NoError(t, e.ReconcileXP(ctx, day))

	xp, ok := e.Ledger().Int(ledger.XPKey(day))
	require.True(t, ok)
	assert.Equal(t, 1, xp)
}

func TestTotalXPSumsAllDays(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	days := []calendar.Key{"2024-07-10", "2024-07-11", "2024-07-12"}
	for i, d := range days {
		require.NoError(t, e.Ledger().SetInt(ctx, ledger.XPKey(d), i+1))
	}
	// Malformed entries degrade to zero instead of failing the sum.
	require.NoError(t, e.Ledger().Set(ctx, ledger.XPKey("2024-07-13"), "junk"))
	assert.Equal(t, 6, e.TotalXP())
}

func TestLevelTable(t *testing.T) {
	cases := []struct {
		total    int
		name     string
		progress float64
	}{
		{0, "Habit Lock", 0},
		{10, "Habit Lock", 0.5},
		{20, "Load Tolerance", 0},
		{45, "Accumulation Capacity", 0},
		{60, "Accumulation Capacity", 0.5},
		{75, "Sustainable Performance", 0},
		{110, "Sustainable Performance", 1},
		{500, "Sustainable Performance", 1},
	}
	for _, tc := range cases {
		info := LevelFor(tc.total)
		assert.Equal(t, tc.name, info.Name, "total=%d", tc.total)
		assert.InDelta(t, tc.progress, info.Progress, 1e-9, "total=%d", tc.total)
	}
}

func TestLevelProgressMonotonicAndClamped(t *testing.T) {
	prevLevel := 0
	for total := 0; total <= 200; total++ {
		info := LevelFor(total)
		assert.GreaterOrEqual(t, info.Level, prevLevel, "level must not regress at %d", total)
		assert.GreaterOrEqual(t, info.Progress, 0.0)
		assert.LessOrEqual(t, info.Progress, 1.0)
		prevLevel = info.Level
	}
	maxed := LevelFor(1000)
	assert.Equal(t, 110, maxed.Display, "maxed display clamps to the last threshold")
}

func TestBonusDoneUsesConfiguredSet(t *testing.T) {
	e := newTestEngine(t)
	day := e.Today()
	mustCheck(t, e, ExArc, day, true)
	mustCheck(t, e, ExShoulder, day, true)
	assert.Equal(t, 2, e.BonusDone(day))

	cfg := e.Config()
	cfg.Progress.BonusItems = []string{ExArc, ExPE, ExSupport}
	e2 := New(e.Ledger(), cfg).WithClock(e.now)
	assert.Equal(t, 1, e2.BonusDone(day))
}
