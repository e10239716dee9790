package ledger

import (
	"fmt"
	"strings"

	"github.com/diarselimi/crux/internal/calendar"
)

// Namespace prefixes every key crux owns. Clearing history removes exactly
// the keys under it.
const Namespace = "crux"

const (
	factNote      = "note"
	factXP        = "xp"
	factBodyCheck = "body-check"
	factDoneAt    = "doneAt"
	factChallenge = "challenge"
)

// Singleton facts with no day component.
const (
	KeyNotifyID       = Namespace + ":notifyId"
	KeyNotifyTime     = Namespace + ":notifyTime"
	KeyMaintenance    = Namespace + ":maintenance-mode"
	KeyCommitment     = Namespace + ":commitment-accepted"
	KeyStreakNoteSeen = Namespace + ":streak-care-note-seen"
)

// ExerciseKey addresses a daily exercise completion flag.
func ExerciseKey(id string, day calendar.Key) string {
	return fmt.Sprintf("%s:%s:%s", Namespace, id, day)
}

// NoteKey addresses a session-note selection within a group.
func NoteKey(group, id string, day calendar.Key) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", Namespace, factNote, group, id, day)
}

func XPKey(day calendar.Key) string {
	return fmt.Sprintf("%s:%s:%s", Namespace, factXP, day)
}

func BodyCheckKey(day calendar.Key) string {
	return fmt.Sprintf("%s:%s:%s", Namespace, factBodyCheck, day)
}

// DoneAtKey addresses the first-completion timestamp (minutes since
// midnight) for a day.
func DoneAtKey(day calendar.Key) string {
	return fmt.Sprintf("%s:%s:%s", Namespace, factDoneAt, day)
}

// ChallengeKey addresses the weekly challenge, indexed by week-start day.
func ChallengeKey(weekStart calendar.Key) string {
	return fmt.Sprintf("%s:%s:%s", Namespace, factChallenge, weekStart)
}

// InNamespace reports whether key belongs to crux.
func InNamespace(key string) bool {
	return strings.HasPrefix(key, Namespace+":")
}

// ParseXPKey extracts the day from an xp key, reporting false for any other
// key shape.
func ParseXPKey(key string) (calendar.Key, bool) {
	prefix := Namespace + ":" + factXP + ":"
	if !strings.HasPrefix(key, prefix) {
		return "", false
	}
	return calendar.Key(strings.TrimPrefix(key, prefix)), true
}

// ParsedNote is a note key split back into its parts. Analytics walks the
// ledger with this instead of splitting raw strings at call sites.
type ParsedNote struct {
	Group string
	ID    string
	Day   calendar.Key
}

// ParseNoteKey extracts the group, note id and day from a note key.
func ParseNoteKey(key string) (ParsedNote, bool) {
	prefix := Namespace + ":" + factNote + ":"
	if !strings.HasPrefix(key, prefix) {
		return ParsedNote{}, false
	}
	parts := strings.Split(strings.TrimPrefix(key, prefix), ":")
	if len(parts) != 3 {
		return ParsedNote{}, false
	}
	return ParsedNote{Group: parts[0], ID: parts[1], Day: calendar.Key(parts[2])}, true
}
