// Package routine holds the training-routine engine: exercise toggles and
// their coupling rules, XP progression, streak and grace accounting, the
// weekly challenge and the daily quote. Every derivation is a pure function
// over the ledger mirror, recomputed on demand.
package routine

// Exercise identifiers. "skip" is the weekly grace token, "recovery" marks a
// rest day; everything else is a session.
const (
	ExMobility = "mobility"
	ExFlex     = "flex"
	ExArc      = "arc"
	ExPE       = "pe"
	ExSupport  = "support"
	ExShoulder = "shoulder"
	ExRecovery = "recovery"
	ExSkip     = "skip"
)

// Exercises is every toggleable item, in display order.
var Exercises = []string{ExMobility, ExFlex, ExArc, ExPE, ExSupport, ExShoulder, ExRecovery, ExSkip}

// sessionItems are the exercises cleared by a day reset.
var sessionItems = []string{ExMobility, ExFlex, ExArc, ExPE, ExSupport, ExShoulder}

// rewardItems trigger the completion cue and the first-completion timestamp.
var rewardItems = map[string]bool{
	ExMobility: true, ExFlex: true, ExArc: true, ExPE: true, ExSupport: true, ExShoulder: true,
}

// recoveryExclusive are forced to "not done" on a recovery day.
var recoveryExclusive = []string{ExArc, ExPE, ExSupport, ExShoulder, ExFlex}

// ExerciseLabels are the card titles from the routine sheet.
var ExerciseLabels = map[string]string{
	ExMobility: "Daily Mobility (Non-Negotiable)",
	ExFlex:     "Climbing-Specific Flexibility",
	ExArc:      "Endurance Base (ARC)",
	ExPE:       "Power-Endurance (Anaerobic Capacity)",
	ExShoulder: "Shoulder Support",
	ExSupport:  "Forearm & Core Support (No Gear)",
	ExRecovery: "Recovery",
	ExSkip:     "Grace",
}

// Note groups.
const (
	NoteGroupLimiters = "limiters"
	NoteGroupFeel     = "feel"
)

// NoteNone is the "nothing felt limiting" option inside limiters; selecting
// it clears its siblings and vice versa.
const NoteNone = "none"

type NoteOption struct {
	ID    string
	Label string
}

var NoteLimiters = []NoteOption{
	{ID: "grip", Label: "Grip / forearms"},
	{ID: "mobility", Label: "Hips / mobility"},
	{ID: "power", Label: "Power"},
	{ID: "endurance", Label: "Endurance"},
	{ID: "focus", Label: "Focus / attention"},
	{ID: NoteNone, Label: "Nothing felt limiting"},
}

var NoteFeels = []NoteOption{
	{ID: "easy", Label: "Easy"},
	{ID: "controlled", Label: "Controlled"},
	{ID: "hard_clean", Label: "Hard but clean"},
	{ID: "sloppy", Label: "Sloppy / fatigued"},
}

type BodyCheck struct {
	ID    string
	Label string
	Tags  []string
}

var BodyChecks = []BodyCheck{
	{ID: "fingers", Label: "Fingers feel stiff", Tags: []string{"crimp"}},
	{ID: "elbows", Label: "Elbows feel tender", Tags: []string{"pull"}},
	{ID: "shoulders", Label: "Shoulders feel tight", Tags: []string{"shoulder"}},
	{ID: "none", Label: "Nothing notable", Tags: nil},
}

// Challenges is the weekly-constraint pool. One is drawn per week and frozen.
var Challenges = []string{
	"ARC-only week. No power or power-endurance.",
	"Mobility every day. One session doubled.",
	"Silent sessions. No music/podcasts.",
	"Left/right-side priority. Start on weaker side.",
	"Technique-only: drop 1-2 grades, perfect form.",
	"No-pump rule: stop when pump starts.",
	"Long holds: fewer reps, longer positions.",
	"Minimum-only week. No bonus sessions.",
	"Form-first: end set at first breakdown.",
	"Deliberate recovery: add one extra recovery day.",
	"Time-blind sessions. No clock checking.",
	"Reduced volume 30-40%, same quality.",
	"Position ownership audit: re-test key positions.",
}

type Quote struct {
	Text string
	Tags []string
}

var Quotes = []Quote{
	{Text: "Ten minutes beats zero. Zero beats nothing except your ego.", Tags: []string{"anchor"}},
	{Text: "Nothing dramatic happens today. That's the point.", Tags: []string{"anchor"}},
	{Text: "Discomfort is the entry fee, not the goal.", Tags: []string{"anchor"}},
	{Text: "The session that feels pointless is the one that counts.", Tags: []string{"neutral"}},
	{Text: "You don't rise to motivation. You sink to your systems.", Tags: []string{"neutral"}},
	{Text: "Consistency is boredom executed well.", Tags: []string{"neutral"}},
	{Text: "Future strength is built on unremarkable days.", Tags: []string{"neutral"}},
	{Text: "Start small. Start now. Adjust later.", Tags: []string{"neutral"}},
	{Text: "Do the minimum. Let momentum handle the rest.", Tags: []string{"neutral"}},
	{Text: "One rep is infinitely more than thinking about reps.", Tags: []string{"neutral"}},
	{Text: "This is maintenance, not self-improvement.", Tags: []string{"neutral"}},
	{Text: "The body remembers what the mind avoids.", Tags: []string{"neutral"}},
	{Text: "Start before you're ready. Readiness is a delay tactic.", Tags: []string{"hard"}},
	{Text: "The urge to skip is the signal.", Tags: []string{"hard"}},
	{Text: "If it feels optional, it isn't.", Tags: []string{"hard"}},
	{Text: "Miss intensity, not days.", Tags: []string{"hard"}},
	{Text: "I train because this is what climbers do.", Tags: []string{"identity"}},
	{Text: "I don't negotiate with the version of me that wants comfort.", Tags: []string{"identity"}},
	{Text: "Some weeks are for showing up, not proving anything.", Tags: []string{"soft"}},
	{Text: "Rest is part of the plan, not a detour.", Tags: []string{"soft"}},
	{Text: "You can restart without making it dramatic.", Tags: []string{"soft"}},
}

// IsExercise reports whether id names a known toggleable item.
func IsExercise(id string) bool {
	for _, e := range Exercises {
		if e == id {
			return true
		}
	}
	return false
}

func noteOptions(group string) []NoteOption {
	switch group {
	case NoteGroupLimiters:
		return NoteLimiters
	case NoteGroupFeel:
		return NoteFeels
	default:
		return nil
	}
}
