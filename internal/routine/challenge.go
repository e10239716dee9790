package routine

import (
	"context"
	"math/rand"

	"github.com/diarselimi/crux/internal/calendar"
	"github.com/diarselimi/crux/internal/ledger"
)

// WeeklyChallenge returns the constraint for the current week, drawing and
// persisting one the first time the week is seen. Once stored, the text
// never changes for that week.
func (e *Engine) WeeklyChallenge(ctx context.Context) (string, error) {
	weekStart, err := calendar.WeekStart(e.Today(), e.cfg.Location())
	if err != nil {
		return "", err
	}
	key := ledger.ChallengeKey(weekStart)
	if existing, ok := e.led.Get(key); ok {
		return existing, nil
	}
	pick := Challenges[rand.Intn(len(Challenges))]
	if err := e.led.Set(ctx, key, pick); err != nil {
		return "", err
	}
	return pick, nil
}
