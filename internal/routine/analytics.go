package routine

import (
	"sort"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/ledger"
)

// LastSessions returns the most recent n days that carry any note selection,
// newest first.
func (e *Engine) LastSessions(n int) []calendar.Key {
	seen := map[calendar.Key]bool{}
	for key, value := range e.led.Snapshot() {
		if value != "1" {
			continue
		}
		if parsed, ok := ledger.ParseNoteKey(key); ok {
			seen[parsed.Day] = true
		}
	}
	days := make([]calendar.Key, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })
	if len(days) > n {
		days = days[:n]
	}
	return days
}

// NoteStat is one note option's frequency over the recent sessions.
// Timeline is oldest-first, one entry per session.
type NoteStat struct {
	NoteOption
	Count    int
	Timeline []bool
}

// NoteSummary aggregates limiter and feel selections across the last seven
// noted sessions.
type NoteSummary struct {
	Sessions []calendar.Key
	Limiters []NoteStat
	Feels    []NoteStat
}

func (e *Engine) statsFor(group string, opts []NoteOption, sessions []calendar.Key) []NoteStat {
	// oldest first for timelines
	ordered := make([]calendar.Key, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	out := make([]NoteStat, 0, len(opts))
	for _, opt := range opts {
		stat := NoteStat{NoteOption: opt}
		for _, day := range ordered {
			checked := e.NoteChecked(group, opt.ID, day)
			stat.Timeline = append(stat.Timeline, checked)
			if checked {
				stat.Count++
			}
		}
		out = append(out, stat)
	}
	return out
}

// Summary builds the last-7-sessions note breakdown.
func (e *Engine) Summary() NoteSummary {
	sessions := e.LastSessions(7)
	return NoteSummary{
		Sessions: sessions,
		Limiters: e.statsFor(NoteGroupLimiters, NoteLimiters, sessions),
		Feels:    e.statsFor(NoteGroupFeel, NoteFeels, sessions),
	}
}
