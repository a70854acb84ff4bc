package cronexpr

import "time"

// matches reports whether t satisfies every field constraint. Fields are
// checked in a fixed order and evaluation stops at the first failure.
//
// Day-of-month and day-of-week are checked independently: when both are
// constrained, both must hold. That narrows the match instead of OR-ing the
// two fields the way canonical Quartz does.
func matches(t time.Time, cs *constraintSet) bool {
	if !cs.seconds.admits(t.Second()) {
		return false
	}
	if !cs.minutes.admits(t.Minute()) {
		return false
	}
	if !cs.hours.admits(t.Hour()) {
		return false
	}
	if !cs.dayOfMonth.admits(t.Day()) {
		return false
	}
	// Weekdays are 1 (Sunday) through 7 (Saturday); time.Weekday starts at 0.
	if !cs.dayOfWeek.admits(int(t.Weekday()) + 1) {
		return false
	}
	if !cs.month.admits(int(t.Month())) {
		return false
	}
	if !cs.year.admits(t.Year()) {
		return false
	}
	return true
}
