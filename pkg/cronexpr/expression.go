package cronexpr

import (
	"fmt"
	"strings"
	"time"
)

// Occurrence is a single matching instant returned by Expression.Next.
// It carries no identity beyond its timestamp.
type Occurrence struct {
	t time.Time
}

// Value returns the instant this occurrence fires at.
func (o Occurrence) Value() time.Time { return o.t }

// Expression is a compiled schedule expression plus the cursor it advances
// through successive occurrences. The cursor is owned exclusively by this
// Expression; calling Next concurrently from multiple goroutines races on it.
type Expression struct {
	constraints constraintSet
	cursor      time.Time
}

// Compile parses a seven-field Quartz-style schedule expression with the
// occurrence cursor starting at the present moment.
func Compile(expr string) (*Expression, error) {
	return CompileFrom(expr, time.Now())
}

// CompileFrom parses expr with the occurrence cursor starting at ref.
// Sub-second precision of ref is truncated to whole seconds.
func CompileFrom(expr string, ref time.Time) (*Expression, error) {
	tokens := strings.Fields(expr)
	if len(tokens) != 7 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("expected 7 fields (second minute hour day-of-month month day-of-week year), got %d", len(tokens)),
		}
	}

	// Domain bounds in token order: second, minute, hour, day-of-month,
	// month, day-of-week (1 = Sunday), year.
	refYear := ref.Year()
	bounds := [7]struct{ min, max int }{
		{0, 59},
		{0, 59},
		{0, 23},
		{1, 31},
		{1, 12},
		{1, 7},
		{refYear, refYear + 100},
	}

	e := &Expression{cursor: ref.Truncate(time.Second)}
	sets := [7]*fieldSet{
		&e.constraints.seconds,
		&e.constraints.minutes,
		&e.constraints.hours,
		&e.constraints.dayOfMonth,
		&e.constraints.month,
		&e.constraints.dayOfWeek,
		&e.constraints.year,
	}
	for i, token := range tokens {
		fs, err := parseField(token, bounds[i].min, bounds[i].max, fieldKind(i))
		if err != nil {
			return nil, err
		}
		*sets[i] = fs
	}

	// Day/weekday mutual exclusion fires on the literal "?" token only, and
	// a "?" day-of-month wins over a "?" day-of-week.
	if tokens[fieldDayOfMonth] == "?" {
		e.constraints.dayOfMonth = fieldSet{}
	} else if tokens[fieldDayOfWeek] == "?" {
		e.constraints.dayOfWeek = fieldSet{}
	}

	return e, nil
}

// Next computes the earliest occurrence strictly after the cursor and
// advances the cursor to it. On failure the cursor is left untouched, so the
// Expression stays valid for further calls.
func (e *Expression) Next() (Occurrence, error) {
	t, err := findNext(e.cursor, &e.constraints)
	if err != nil {
		return Occurrence{}, err
	}
	e.cursor = t
	return Occurrence{t: t}, nil
}
