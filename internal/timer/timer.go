// Package timer is the session stopwatch. Elapsed time is always re-derived
// from a reference timestamp rather than accumulated, so it stays correct
// across suspension and across races between the periodic resample and a
// foreground-transition resample.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// Mode selects the cue policy; it never affects run state.
type Mode string

const (
	ModeFree      Mode = "free"
	ModeIntervals Mode = "intervals"
	ModeSilent    Mode = "silent"
)

// modeOrder is the fixed cycle order.
var modeOrder = []Mode{ModeFree, ModeIntervals, ModeSilent}

// ModeLabels for display.
var ModeLabels = map[Mode]string{
	ModeFree:      "Free",
	ModeIntervals: "Intervals",
	ModeSilent:    "Silent",
}

// Cue identifiers delivered at interval boundaries.
const (
	Cue10 = "timer10"
	Cue30 = "timer30"
	Cue60 = "timer60"
)

// Haptic pulse lengths for silent mode, in milliseconds.
const (
	pulse10 = 10
	pulse30 = 20
	pulse60 = 30
)

// CueSink receives boundary cues. Best effort; implementations swallow
// errors.
type CueSink interface {
	PlayCue(id string)
	Vibrate(ms int)
}

type nopSink struct{}

func (nopSink) PlayCue(string) {}
func (nopSink) Vibrate(int)    {}

// Surface mirrors timer state into an external persistent notification. It
// is a fire-and-forget sink and never authoritative.
type Surface interface {
	Start(elapsed time.Duration, mode Mode)
	Update(elapsed time.Duration)
	SetMode(mode Mode)
	Stop()
}

type nopSurface struct{}

func (nopSurface) Start(time.Duration, Mode) {}
func (nopSurface) Update(time.Duration)      {}
func (nopSurface) SetMode(Mode)              {}
func (nopSurface) Stop()                     {}

const resampleEvery = 250 * time.Millisecond

// Timer is a stopwatch with pause/resume/reset and a cyclable cue mode.
type Timer struct {
	mu         sync.Mutex
	running    bool
	refStart   time.Time     // now minus elapsed while running
	frozen     time.Duration // elapsed while paused
	modeIdx    int
	lastSecond int // last announced second, dedups re-entrant resamples

	cues    CueSink
	surface Surface
	now     func() time.Time

	stop chan struct{}
	done chan struct{}
}

func New() *Timer {
	return &Timer{
		cues:       nopSink{},
		surface:    nopSurface{},
		now:        time.Now,
		lastSecond: -1,
	}
}

// WithCues replaces the cue sink.
func (t *Timer) WithCues(c CueSink) *Timer {
	t.cues = c
	return t
}

// WithSurface attaches the external timer surface.
func (t *Timer) WithSurface(s Surface) *Timer {
	t.surface = s
	return t
}

// WithClock fixes the timer's clock. Tests use this.
func (t *Timer) WithClock(now func() time.Time) *Timer {
	t.now = now
	return t
}

// Mode returns the current cue mode.
func (t *Timer) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return modeOrder[t.modeIdx]
}

// CycleMode advances free -> intervals -> silent -> free. Run state is
// untouched.
func (t *Timer) CycleMode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modeIdx = (t.modeIdx + 1) % len(modeOrder)
	mode := modeOrder[t.modeIdx]
	if t.running {
		t.surface.SetMode(mode)
	}
	return mode
}

// Running reports whether the stopwatch is counting.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Elapsed re-derives elapsed time from the reference timestamp.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsedLocked()
}

func (t *Timer) elapsedLocked() time.Duration {
	if t.running {
		return t.now().Sub(t.refStart)
	}
	return t.frozen
}

// Start begins or resumes the stopwatch. No-op when already running. The
// reference timestamp is set to now minus the already-elapsed time so a
// resume continues where pause left off.
func (t *Timer) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.refStart = t.now().Add(-t.frozen)
	t.lastSecond = int(t.frozen / time.Second)
	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	elapsed := t.frozen
	mode := modeOrder[t.modeIdx]
	stop, done := t.stop, t.done
	t.mu.Unlock()

	t.cues.Vibrate(5)
	t.surface.Start(elapsed, mode)

	go func() {
		defer close(done)
		ticker := time.NewTicker(resampleEvery)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.Resample()
			}
		}
	}()
}

// Pause freezes elapsed time and cancels the periodic resample, blocking
// until the tick goroutine has exited.
func (t *Timer) Pause() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.frozen = t.now().Sub(t.refStart)
	t.running = false
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	close(stop)
	<-done
	t.cues.Vibrate(5)
	t.surface.Stop()
}

// Reset stops the stopwatch if needed and zeroes it.
func (t *Timer) Reset() {
	t.Pause()
	t.mu.Lock()
	t.frozen = 0
	t.lastSecond = -1
	t.mu.Unlock()
}

// Resample recomputes elapsed time from the reference timestamp and fires
// any newly crossed boundary cue. Safe to call from both the tick goroutine
// and a foreground-transition handler; each crossed second announces at most
// once.
func (t *Timer) Resample() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	elapsed := t.now().Sub(t.refStart)
	seconds := int(elapsed / time.Second)
	if seconds == t.lastSecond {
		t.mu.Unlock()
		return
	}
	t.lastSecond = seconds
	mode := modeOrder[t.modeIdx]
	t.mu.Unlock()

	t.announce(seconds, mode)
	t.surface.Update(elapsed)
}

// announce fires the boundary cue for a second count. When boundaries
// coincide, 60s beats 30s beats 10s.
func (t *Timer) announce(seconds int, mode Mode) {
	if seconds <= 0 {
		return
	}
	switch mode {
	case ModeFree:
		if seconds%60 == 0 {
			t.cues.PlayCue(Cue60)
		}
	case ModeIntervals:
		switch {
		case seconds%60 == 0:
			t.cues.PlayCue(Cue60)
		case seconds%30 == 0:
			t.cues.PlayCue(Cue30)
		case seconds%10 == 0:
			t.cues.PlayCue(Cue10)
		}
	case ModeSilent:
		switch {
		case seconds%60 == 0:
			t.cues.Vibrate(pulse60)
		case seconds%30 == 0:
			t.cues.Vibrate(pulse30)
		case seconds%10 == 0:
			t.cues.Vibrate(pulse10)
		}
	}
}

// FormatElapsed renders a duration as mm:ss.
func FormatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
