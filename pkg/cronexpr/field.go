package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// parseField compiles one schedule-field token into a fieldSet over the
// domain [min, max]. "?" is only legal for day-of-month and day-of-week and
// yields the unconstrained marker, as does "*" on the year field (an
// unconstrained year matches everything; expanding the hundred-year domain
// buys nothing). Out-of-range values are not rejected — they compile to
// constraints that can never equal a real date component.
func parseField(token string, min, max int, kind fieldKind) (fieldSet, error) {
	return parseFieldExpr(token, min, max, kind, false)
}

// parseFieldExpr does the recursive work of parseField. sub marks a
// sub-expression (the base of a step or an element of a comma list), where
// "?" is rejected: an unconstrained marker combined with other forms would
// silently vanish from the result.
func parseFieldExpr(token string, min, max int, kind fieldKind, sub bool) (fieldSet, error) {
	switch token {
	case "?":
		if kind != fieldDayOfMonth && kind != fieldDayOfWeek {
			return fieldSet{}, &ValidationError{
				Field:  kind.String(),
				Token:  token,
				Reason: `"?" is only valid for day-of-month and day-of-week`,
			}
		}
		if sub {
			return fieldSet{}, &ValidationError{
				Field:  kind.String(),
				Token:  token,
				Reason: `"?" must be the whole field, not part of a list or step`,
			}
		}
		return fieldSet{}, nil
	case "*":
		if kind == fieldYear {
			return fieldSet{}, nil
		}
		return fieldSet{values: rangeValues(min, max)}, nil
	}

	// "base/step" first so the stride applies to the whole base sequence.
	if base, step, ok := strings.Cut(token, "/"); ok {
		baseSet, err := parseFieldExpr(base, min, max, kind, true)
		if err != nil {
			return fieldSet{}, err
		}
		n, err := strconv.Atoi(step)
		if err != nil || n <= 0 {
			return fieldSet{}, &ValidationError{
				Field:  kind.String(),
				Token:  token,
				Reason: "step must be a positive integer",
			}
		}
		return fieldSet{values: stride(baseSet.values, n)}, nil
	}

	// Comma lists before ranges so each element may itself be a range.
	if strings.Contains(token, ",") {
		var values []int
		for _, part := range strings.Split(token, ",") {
			elem, err := parseFieldExpr(part, min, max, kind, true)
			if err != nil {
				return fieldSet{}, err
			}
			values = append(values, elem.values...)
		}
		return fieldSet{values: values}, nil
	}

	if lo, hi, ok := strings.Cut(token, "-"); ok {
		start, err := parseNumber(lo, kind, token)
		if err != nil {
			return fieldSet{}, err
		}
		end, err := parseNumber(hi, kind, token)
		if err != nil {
			return fieldSet{}, err
		}
		if start > end {
			// An inverted range would compile to an empty set, and empty
			// means "unconstrained" here — reject instead.
			return fieldSet{}, &ValidationError{
				Field:  kind.String(),
				Token:  token,
				Reason: fmt.Sprintf("range start %d exceeds end %d", start, end),
			}
		}
		return fieldSet{values: rangeValues(start, end)}, nil
	}

	v, err := parseNumber(token, kind, token)
	if err != nil {
		return fieldSet{}, err
	}
	return fieldSet{values: []int{v}}, nil
}

func parseNumber(s string, kind fieldKind, token string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{
			Field:  kind.String(),
			Token:  token,
			Reason: fmt.Sprintf("%q is not a number", s),
		}
	}
	return v, nil
}

// rangeValues expands the inclusive range [lo, hi] into an ascending slice.
func rangeValues(lo, hi int) []int {
	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}
	return values
}

// stride keeps every step-th element of seq by position, zero-indexed.
// For a contiguous ascending base starting at the domain minimum this equals
// conventional cron step semantics. For any other base it filters positions,
// not values — "1,2,3,4,5/2" keeps 1, 3 and 5 by index, whatever the values
// are. Callers depend on this positional behavior; do not change it to a
// value-modulo filter.
func stride(seq []int, step int) []int {
	kept := make([]int, 0, (len(seq)+step-1)/step)
	for i := 0; i < len(seq); i += step {
		kept = append(kept, seq[i])
	}
	return kept
}
