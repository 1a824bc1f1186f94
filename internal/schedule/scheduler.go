package schedule

import (
	"context"
	"time"
)

// NextAt computes the next occurrence of the "HH:MM" clock time strictly
// after now in loc. An unparsable time falls back to 00:05.
func NextAt(now time.Time, at string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	hour, min := 0, 5
	if t, err := time.ParseInLocation("15:04", at, loc); err == nil {
		hour = t.Hour()
		min = t.Minute()
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		// Rebuilding from day+1 keeps the wall clock across DST changes.
		cand = time.Date(now.Year(), now.Month(), now.Day()+1, hour, min, 0, 0, loc)
	}
	return cand
}

// RunDaily calls f with the firing time at each daily occurrence of at until
// ctx is canceled.
func RunDaily(ctx context.Context, at string, loc *time.Location, f func(time.Time)) {
	next := NextAt(time.Now(), at, loc)
	t := time.NewTimer(time.Until(next))
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
		case fired := <-t.C:
			f(fired.In(next.Location()))
			next = NextAt(time.Now(), at, loc)
			t.Reset(time.Until(next))
		}
	}
}
