package cronexpr

import (
	"errors"
	"fmt"
)

// ErrNoOccurrence is returned by Expression.Next when no matching instant
// exists within the search bound.
var ErrNoOccurrence = errors.New("no matching occurrence within search bound")

// ValidationError reports a malformed schedule expression or field token.
// Callers can distinguish it from ErrNoOccurrence with errors.As.
type ValidationError struct {
	Field  string // field name, empty for expression-level errors
	Token  string // offending token, empty for expression-level errors
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid schedule expression: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s field %q: %s", e.Field, e.Token, e.Reason)
}
