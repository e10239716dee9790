package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/ledger"
)

const defaultMinutes = 19*60 + 30

type fakeCapability struct {
	granted   bool
	scheduled []int // minutes of each ScheduleDaily call
	cancelled []string
	cancelErr error
	nextID    int
}

func (f *fakeCapability) PermissionGranted() bool { return f.granted }

func (f *fakeCapability) ScheduleDaily(_ context.Context, hour, minute int, _ Content) (string, error) {
	f.nextID++
	f.scheduled = append(f.scheduled, hour*60+minute)
	return string(rune('a' + f.nextID)), nil
}

func (f *fakeCapability) Cancel(_ context.Context, handle string) error {
	f.cancelled = append(f.cancelled, handle)
	return f.cancelErr
}

func newTestScheduler(t *testing.T, fc *fakeCapability) (*Scheduler, *ledger.Ledger) {
	t.Helper()
	led, err := ledger.Load(context.Background(), ledger.NewMemoryStore())
	require.NoError(t, err)
	return NewScheduler(led, fc, defaultMinutes, time.Local), led
}

func setDoneAt(t *testing.T, led *ledger.Ledger, day calendar.Key, minutes int) {
	t.Helper()
	require.NoError(t, led.SetInt(context.Background(), ledger.DoneAtKey(day), minutes))
}

const today = calendar.Key("2024-07-18")

func TestTargetDefaultsWithoutHistory(t *testing.T) {
	s, led := newTestScheduler(t, &fakeCapability{granted: true})
	assert.Equal(t, defaultMinutes, s.TargetMinutes(today))

	// Two samples are still not enough.
	setDoneAt(t, led, "2024-07-17", 600)
	setDoneAt(t, led, "2024-07-16", 620)
	assert.Equal(t, defaultMinutes, s.TargetMinutes(today))
}

func TestTargetIsRoundedMean(t *testing.T) {
	s, led := newTestScheduler(t, &fakeCapability{granted: true})
	setDoneAt(t, led, "2024-07-18", 601)
	setDoneAt(t, led, "2024-07-17", 612)
	setDoneAt(t, led, "2024-07-16", 623)
	// mean 612 -> 610 on the 5-minute grid
	assert.Equal(t, 610, s.TargetMinutes(today))
}

func TestTargetRoundsFractionalMeanUp(t *testing.T) {
	s, led := newTestScheduler(t, &fakeCapability{granted: true})
	setDoneAt(t, led, "2024-07-18", 600)
	setDoneAt(t, led, "2024-07-17", 600)
	setDoneAt(t, led, "2024-07-16", 608)
	// mean 602.67: nearest grid point is 605, not the truncated 600
	assert.Equal(t, 605, s.TargetMinutes(today))
}

func TestTargetIgnoresSamplesOutsideWindow(t *testing.T) {
	s, led := newTestScheduler(t, &fakeCapability{granted: true})
	setDoneAt(t, led, "2024-07-01", 300) // 17 days back, outside the window
	setDoneAt(t, led, "2024-07-18", 600)
	setDoneAt(t, led, "2024-07-17", 600)
	setDoneAt(t, led, "2024-07-16", 600)
	assert.Equal(t, 600, s.TargetMinutes(today))
}

func TestEnsureIsIdempotentForUnchangedTarget(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCapability{granted: true}
	s, _ := newTestScheduler(t, fc)

	require.NoError(t, s.Ensure(ctx, today))
	require.Len(t, fc.scheduled, 1)
	assert.Equal(t, defaultMinutes, fc.scheduled[0])

	// Same inputs: no cancel, no reschedule.
	require.NoError(t, s.Ensure(ctx, today))
	assert.Len(t, fc.scheduled, 1)
	assert.Empty(t, fc.cancelled)
}

func TestEnsureReschedulesOnTargetChange(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCapability{granted: true}
	s, led := newTestScheduler(t, fc)

	require.NoError(t, s.Ensure(ctx, today))
	require.Len(t, fc.scheduled, 1)

	setDoneAt(t, led, "2024-07-18", 600)
	setDoneAt(t, led, "2024-07-17", 600)
	setDoneAt(t, led, "2024-07-16", 600)

	require.NoError(t, s.Ensure(ctx, today))
	require.Len(t, fc.scheduled, 2)
	assert.Equal(t, 600, fc.scheduled[1])
	assert.Len(t, fc.cancelled, 1)

	target, ok := led.Int(ledger.KeyNotifyTime)
	require.True(t, ok)
	assert.Equal(t, 600, target)
}

func TestEnsureToleratesCancelOfMissingHandle(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCapability{granted: true, cancelErr: errors.New("not found")}
	s, led := newTestScheduler(t, fc)

	require.NoError(t, s.Ensure(ctx, today))
	setDoneAt(t, led, "2024-07-18", 480)
	setDoneAt(t, led, "2024-07-17", 480)
	setDoneAt(t, led, "2024-07-16", 480)

	assert.NoError(t, s.Ensure(ctx, today), "stale handle cancellation is silent")
	assert.Len(t, fc.scheduled, 2)
}

func TestEnsureNoopWithoutPermission(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCapability{granted: false}
	s, led := newTestScheduler(t, fc)

	require.NoError(t, s.Ensure(ctx, today))
	assert.Empty(t, fc.scheduled)
	_, ok := led.Get(ledger.KeyNotifyID)
	assert.False(t, ok)
}
