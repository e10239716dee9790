package routine

import (
	"github.com/diarselimi/crux/internal/calendar"
)

// maxStreakScan bounds the backward walk to ten years.
const maxStreakScan = 3650

// gapScanDays bounds the search for the most recent completed-or-graced day.
const gapScanDays = 30

// graceWindowDays is the lookback for counting grace use.
const graceWindowDays = 14

// dayCounts reports whether day preserves the streak: the daily minimum was
// done or the grace token covered it. With streak.count_recovery set, a
// recovery day counts too.
func (e *Engine) dayCounts(day calendar.Key) bool {
	if e.Checked(ExMobility, day) || e.Checked(ExSkip, day) {
		return true
	}
	return e.cfg.Streak.CountRecovery && e.Checked(ExRecovery, day)
}

// Streak counts consecutive streak-preserving days ending at today. A
// still-open today doesn't zero the streak: when today is incomplete the
// walk starts at yesterday.
func (e *Engine) Streak(today calendar.Key) int {
	loc := e.cfg.Location()
	cursor := today
	if !e.dayCounts(today) {
		prev, err := calendar.AddDays(cursor, -1, loc)
		if err != nil {
			return 0
		}
		cursor = prev
	}

	count := 0
	for i := 0; i < maxStreakScan; i++ {
		if !e.dayCounts(cursor) {
			break
		}
		count++
		prev, err := calendar.AddDays(cursor, -1, loc)
		if err != nil {
			break
		}
		cursor = prev
	}
	return count
}

// SkipState describes the grace token for display and toggle guarding.
type SkipState struct {
	Active   bool
	Disabled bool
	Label    string
}

// SkipState derives the weekly grace token state for day: locked once the
// minimum is done, used (elsewhere in the week) once any day of the ISO week
// recorded it, otherwise available.
func (e *Engine) SkipState(day calendar.Key) SkipState {
	loc := e.cfg.Location()
	if e.Checked(ExMobility, day) {
		return SkipState{Disabled: true, Label: "Locked"}
	}

	weekStart, err := calendar.WeekStart(day, loc)
	if err == nil {
		for i := 0; i < 7; i++ {
			d, err := calendar.AddDays(weekStart, i, loc)
			if err != nil {
				break
			}
			if e.Checked(ExSkip, d) {
				if d != day {
					return SkipState{Disabled: true, Label: "Used"}
				}
				break
			}
		}
	}
	return SkipState{Active: e.Checked(ExSkip, day), Label: "1 / week"}
}

// graceCount counts grace-token days in the trailing window ending at day.
func (e *Engine) graceCount(day calendar.Key, window int) int {
	loc := e.cfg.Location()
	n := 0
	for i := 0; i < window; i++ {
		d, err := calendar.AddDays(day, -i, loc)
		if err != nil {
			break
		}
		if e.Checked(ExSkip, d) {
			n++
		}
	}
	return n
}

// lastCompletionGap is the distance in days to the most recent completed or
// graced day, or -1 when none exists within the scan window.
func (e *Engine) lastCompletionGap(day calendar.Key) int {
	loc := e.cfg.Location()
	for i := 0; i < gapScanDays; i++ {
		d, err := calendar.AddDays(day, -i, loc)
		if err != nil {
			break
		}
		if e.Checked(ExMobility, d) || e.Checked(ExSkip, d) {
			return i
		}
	}
	return -1
}

// SoftLanding reports whether the user should get gentler messaging: the
// streak just broke, grace is being leaned on, or recovery has stretched
// past a single day.
func (e *Engine) SoftLanding(day calendar.Key) bool {
	minimumDone := e.Checked(ExMobility, day)
	graceActive := e.Checked(ExSkip, day)

	gap := e.lastCompletionGap(day)
	streakBroken := !minimumDone && !graceActive && gap >= 2

	if streakBroken {
		return true
	}
	if e.graceCount(day, graceWindowDays) >= 2 {
		return true
	}

	if e.Checked(ExRecovery, day) {
		prev, err := calendar.AddDays(day, -1, e.cfg.Location())
		if err == nil && e.Checked(ExRecovery, prev) {
			return true
		}
	}
	return false
}
