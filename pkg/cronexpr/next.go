package cronexpr

import "time"

const (
	// skipThreshold is how many consecutive misses the per-second scan
	// tolerates before the coarse year/month/day jumps kick in.
	skipThreshold = 10_000

	// maxIterations bounds the whole search at five years' worth of seconds.
	maxIterations = 5 * 365 * 24 * 60 * 60
)

// findNext returns the earliest instant strictly after start that satisfies
// cs, or ErrNoOccurrence if none exists within the search bound.
func findNext(start time.Time, cs *constraintSet) (time.Time, error) {
	t := start.Add(time.Second)
	for i := 0; i < maxIterations; i++ {
		if matches(t, cs) {
			return t, nil
		}
		if i >= skipThreshold {
			next, jumped, err := skipAhead(t, cs)
			if err != nil {
				return time.Time{}, err
			}
			if jumped {
				// The jump already moved t forward; no extra per-second
				// increment this iteration.
				t = next
				continue
			}
		}
		t = t.Add(time.Second)
	}
	return time.Time{}, ErrNoOccurrence
}

// skipAhead applies at most one coarse jump: to the start of the next year,
// month, or day, in that priority order, whenever the corresponding
// constrained field cannot match the current position. Finer components
// reset to zero so the per-second scan resumes from a clean boundary.
//
// A year jump past the largest constrained year fails the search
// immediately — no later instant can ever match.
func skipAhead(t time.Time, cs *constraintSet) (time.Time, bool, error) {
	loc := t.Location()
	if !cs.year.unconstrained() && !cs.year.contains(t.Year()) {
		next := t.Year() + 1
		if next > cs.year.max() {
			return time.Time{}, false, ErrNoOccurrence
		}
		return time.Date(next, time.January, 1, 0, 0, 0, 0, loc), true, nil
	}
	if !cs.month.unconstrained() && !cs.month.contains(int(t.Month())) {
		// time.Date normalizes month 13 to January of the next year.
		return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, loc), true, nil
	}
	if !cs.dayOfMonth.unconstrained() && !cs.dayOfMonth.contains(t.Day()) {
		return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc), true, nil
	}
	return time.Time{}, false, nil
}
