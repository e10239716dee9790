package routine

import (
	"context"
	"fmt"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/ledger"
)

// Level thresholds and names. Progress within a band is linear between the
// band's bounds.
var (
	levelThresholds = []int{20, 45, 75, 110}
	levelNames      = []string{
		"Habit Lock",
		"Load Tolerance",
		"Accumulation Capacity",
		"Sustainable Performance",
	}
)

// xpWeights per exercise on a non-recovery day. Shoulder is bonus-only and
// carries no XP.
var xpWeights = map[string]int{
	ExMobility: 1,
	ExArc:      2,
	ExPE:       3,
	ExSupport:  1,
	ExFlex:     1,
}

// recoveryXP is the flat maintenance credit for a recovery day.
const recoveryXP = 1

// DailyXP derives the day's XP from its completion flags. Recovery caps the
// day at the maintenance credit regardless of anything else.
func (e *Engine) DailyXP(day calendar.Key) int {
	if e.Checked(ExRecovery, day) {
		return recoveryXP
	}
	xp := 0
	for item, w := range xpWeights {
		if e.Checked(item, day) {
			xp += w
		}
	}
	return xp
}

// ReconcileXP overwrites the day's cached XP whenever the derived value
// disagrees with it.
func (e *Engine) ReconcileXP(ctx context.Context, day calendar.Key) error {
	derived := e.DailyXP(day)
	stored, _ := e.led.Int(ledger.XPKey(day))
	if stored == derived {
		return nil
	}
	return e.led.SetInt(ctx, ledger.XPKey(day), derived)
}

// TotalXP sums every cached daily XP value, lifetime. Malformed entries
// count as zero.
func (e *Engine) TotalXP() int {
	total := 0
	for key := range e.led.Snapshot() {
		if _, ok := ledger.ParseXPKey(key); !ok {
			continue
		}
		n, _ := e.led.Int(key)
		total += n
	}
	return total
}

// LevelInfo is the progression display state for a total XP value.
type LevelInfo struct {
	Level    int // 1-based
	Name     string
	Progress float64 // 0..1 within the current band
	Display  int     // XP shown, clamped to the cap when maxed
	Cap      int     // upper bound of the current band
}

// LevelFor maps a lifetime XP total onto the level table.
func LevelFor(total int) LevelInfo {
	level := 1
	lower := 0
	upper := levelThresholds[0]
	for i, cut := range levelThresholds {
		if total >= cut {
			level = i + 2
			lower = cut
			if i+1 < len(levelThresholds) {
				upper = levelThresholds[i+1]
			} else {
				upper = cut
			}
		}
	}
	if level > len(levelNames) {
		level = len(levelNames)
	}

	progress := 1.0
	if upper > lower {
		progress = float64(total-lower) / float64(upper-lower)
	}
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}

	display := total
	if display > upper {
		display = upper
	}
	return LevelInfo{
		Level:    level,
		Name:     levelNames[level-1],
		Progress: progress,
		Display:  display,
		Cap:      upper,
	}
}

// Label renders the progress line, e.g. "Load Tolerance - 32 / 45".
func (i LevelInfo) Label() string {
	return fmt.Sprintf("%s - %d / %d", i.Name, i.Display, i.Cap)
}

// Progress returns the level state for the current lifetime total.
func (e *Engine) Progress() LevelInfo {
	return LevelFor(e.TotalXP())
}

// BonusDone counts today's completed bonus items, per the configured bonus
// set.
func (e *Engine) BonusDone(day calendar.Key) int {
	n := 0
	for _, item := range e.cfg.Progress.BonusItems {
		if e.Checked(item, day) {
			n++
		}
	}
	return n
}

// CompletedToday reports whether any rewarded exercise was done on day.
func (e *Engine) CompletedToday(day calendar.Key) bool {
	for item := range rewardItems {
		if e.Checked(item, day) {
			return true
		}
	}
	return false
}
