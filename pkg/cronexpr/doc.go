// Package cronexpr compiles Quartz-style seven-field schedule expressions
// (second minute hour day-of-month month day-of-week year) and computes the
// successive instants they fire at.
//
// Compile parses an expression into an Expression, which owns a mutable
// cursor starting at a reference instant. Each call to Next returns the
// earliest occurrence strictly after the cursor and advances the cursor to
// it, so repeated calls walk forward through the schedule.
//
// Weekdays are numbered 1 (Sunday) through 7 (Saturday). The search for the
// next occurrence is a bounded per-second scan with coarse year/month/day
// jumps once it has run long; it gives up after five years' worth of seconds
// and returns ErrNoOccurrence.
//
// An Expression is not safe for concurrent use — its cursor is mutated by
// Next. Independently compiled Expressions share no state.
package cronexpr
