package engine

import "time"

// TimedFlag is a visual effect flag bounded by a deadline
// Activity is derived from the query time, so a clear can never arrive late
type TimedFlag struct {
	until time.Time
}

// Set activates the flag for d starting at now, replacing any earlier deadline
func (f *TimedFlag) Set(now time.Time, d time.Duration) {
	f.until = now.Add(d)
}

// Active reports whether the deadline is still in the future at now
func (f *TimedFlag) Active(now time.Time) bool {
	return now.Before(f.until)
}

// Remaining returns time left before expiry, zero when inactive
func (f *TimedFlag) Remaining(now time.Time) time.Duration {
	if !f.Active(now) {
		return 0
	}
	return f.until.Sub(now)
}

// Clear deactivates the flag immediately
func (f *TimedFlag) Clear() {
	f.until = time.Time{}
}
