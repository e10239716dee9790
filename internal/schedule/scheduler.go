package schedule

import (
	"context"
	"time"
)

// NextAt computes the next wall-clock occurrence of the given
// minutes-since-midnight target, today if still ahead, otherwise tomorrow.
func NextAt(now time.Time, targetMinutes int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	cand := time.Date(now.Year(), now.Month(), now.Day(), targetMinutes/60, targetMinutes%60, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// Run fires f at the target time daily until ctx is canceled. The target is
// re-read before every arm so an adaptive reschedule takes effect at the
// next cycle.
func Run(ctx context.Context, loc *time.Location, target func() int, f func()) {
	t := time.NewTimer(time.Until(NextAt(time.Now(), target(), loc)))
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			f()
			t.Reset(time.Until(NextAt(time.Now(), target(), loc)))
		}
	}
}
