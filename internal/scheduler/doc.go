// Package scheduler provides the in-memory job runtime for warpcron.
// It implements a single-goroutine scheduler using a min-heap of Events
// sorted by trigger time, with a 60-second max-sleep-cap to handle NTP steps,
// DST transitions, and system sleep (macOS monotonic clock pause).
//
// Recurring events carry a compiled cronexpr.Expression; after an event
// fires, its next trigger time comes from the expression's occurrence
// cursor. The scheduler holds no persistent state — callers rebuild the heap
// from their own schedule source on startup.
package scheduler
