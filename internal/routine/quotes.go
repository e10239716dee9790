package routine

import (
	"github.com/diarselimi/crux/internal/calendar"
)

// pickQuote selects deterministically from pool using a character-sum seed,
// so the same day always shows the same quote. Falls back to the full pool
// when the filter matched nothing.
func pickQuote(seedKey string, pool []Quote) Quote {
	list := pool
	if len(list) == 0 {
		list = Quotes
	}
	seed := 0
	for _, c := range seedKey {
		seed += int(c)
	}
	return list[seed%len(list)]
}

func quotesTagged(tags ...string) []Quote {
	want := map[string]bool{}
	for _, t := range tags {
		want[t] = true
	}
	var out []Quote
	for _, q := range Quotes {
		for _, t := range q.Tags {
			if want[t] {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// QuoteOfDay picks the day's quote from a tag pool chosen by routine state:
// soft-landing days get the gentle pool, finished days the affirming one,
// recovery/grace/body-signal days avoid the hard lines, everything else
// draws from the full motivational set.
func (e *Engine) QuoteOfDay(day calendar.Key) Quote {
	bodySignal := e.BodyCheck(day) != "" && e.BodyCheck(day) != "none"
	recoveryActive := e.Checked(ExRecovery, day)
	graceActive := e.Checked(ExSkip, day)

	switch {
	case e.SoftLanding(day):
		return pickQuote(string(day)+":soft", quotesTagged("soft"))
	case e.CompletedToday(day) && !recoveryActive && !graceActive:
		return pickQuote(string(day)+":post", quotesTagged("anchor", "neutral", "identity"))
	case bodySignal || recoveryActive || graceActive:
		return pickQuote(string(day)+":gentle", quotesTagged("anchor", "neutral"))
	default:
		return pickQuote(string(day)+":default", quotesTagged("anchor", "neutral", "hard"))
	}
}
