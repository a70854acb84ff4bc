package scheduler

import (
	"time"

	"github.com/warpdl/warpcron/pkg/cronexpr"
)

// Event represents a pending job in the scheduler heap.
// It is an in-memory only type — the heap is rebuilt from the caller's
// schedule source on restart.
type Event struct {
	// ID is the unique identifier of the job to run when TriggerAt is reached.
	ID string
	// TriggerAt is the wall-clock time when this job should fire.
	TriggerAt time.Time
	// Schedule is the compiled recurring schedule. Its cursor supplies the
	// trigger time after each firing. Nil means one-shot — no re-scheduling.
	Schedule *cronexpr.Expression
}
