package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/warpdl/warpcron/pkg/cronexpr"
)

func TestScheduler_AddAndFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	fired := make(map[string]bool)
	onTrigger := func(id string) {
		mu.Lock()
		fired[id] = true
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	// Schedule an event 100ms from now
	s.Add(Event{
		ID:        "job1",
		TriggerAt: time.Now().Add(100 * time.Millisecond),
	})

	// Wait enough time for the event to fire
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if !fired["job1"] {
		t.Fatal("expected job1 to fire")
	}
}

func TestScheduler_CancelBeforeFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	fired := make(map[string]bool)
	onTrigger := func(id string) {
		mu.Lock()
		fired[id] = true
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	// Schedule an event 2s from now (plenty of margin)
	s.Add(Event{
		ID:        "job2",
		TriggerAt: time.Now().Add(2 * time.Second),
	})

	// Give the goroutine time to process the add
	time.Sleep(100 * time.Millisecond)

	// Cancel it before it fires
	s.Remove("job2")

	// Give the goroutine time to process the remove
	time.Sleep(100 * time.Millisecond)

	// Wait past the trigger time
	time.Sleep(2 * time.Second)

	mu.Lock()
	defer mu.Unlock()
	if fired["job2"] {
		t.Fatal("expected job2 NOT to fire after cancel")
	}
}

func TestScheduler_ShutdownViaContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	fired := make(map[string]bool)
	onTrigger := func(id string) {
		mu.Lock()
		fired[id] = true
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	// Schedule an event 500ms from now
	s.Add(Event{
		ID:        "job3",
		TriggerAt: time.Now().Add(500 * time.Millisecond),
	})

	// Cancel context immediately
	cancel()

	// Wait past the trigger time
	time.Sleep(700 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired["job3"] {
		t.Fatal("expected job3 NOT to fire after context cancel")
	}
	_ = s // ensure scheduler is referenced
}

func TestScheduler_EmptyDoesNotFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firedCount := 0
	onTrigger := func(id string) {
		firedCount++
	}

	_ = New(ctx, onTrigger)

	// Wait a bit to ensure nothing spurious fires
	time.Sleep(200 * time.Millisecond)

	if firedCount != 0 {
		t.Fatalf("expected no triggers on empty scheduler, got %d", firedCount)
	}
}

func TestScheduler_MultipleEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	fired := []string{}
	onTrigger := func(id string) {
		mu.Lock()
		fired = append(fired, id)
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	// Schedule two events at different times
	s.Add(Event{
		ID:        "first",
		TriggerAt: time.Now().Add(100 * time.Millisecond),
	})
	s.Add(Event{
		ID:        "second",
		TriggerAt: time.Now().Add(200 * time.Millisecond),
	})

	// Wait for both to fire
	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 2 {
		t.Fatalf("expected 2 triggers, got %d", len(fired))
	}
	// First should fire before second
	if fired[0] != "first" {
		t.Errorf("expected first to fire first, got %s", fired[0])
	}
	if fired[1] != "second" {
		t.Errorf("expected second to fire second, got %s", fired[1])
	}
}

func TestScheduler_RemoveNonexistent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(ctx, func(id string) {})

	// Removing a nonexistent ID should not panic
	s.Remove("nonexistent")
}

func TestScheduler_RecurringReSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	fireCount := 0
	onTrigger := func(id string) {
		mu.Lock()
		fireCount++
		mu.Unlock()
	}

	s := New(ctx, onTrigger)

	// An every-second schedule: the first trigger comes from the cursor,
	// each later one from re-adding after a fire.
	expr, err := cronexpr.Compile("* * * * * ? *")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	occ, err := expr.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	s.Add(Event{
		ID:        "recurring",
		TriggerAt: occ.Value(),
		Schedule:  expr,
	})

	// Wait enough for at least two one-second firings.
	time.Sleep(2500 * time.Millisecond)

	mu.Lock()
	count := fireCount
	mu.Unlock()

	if count < 2 {
		t.Fatalf("expected recurring event to fire at least twice, got %d", count)
	}
}
