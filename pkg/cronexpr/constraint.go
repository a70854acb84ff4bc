package cronexpr

// fieldKind identifies which of the seven schedule fields a token belongs to.
// The order matches the token order of an expression.
type fieldKind int

const (
	fieldSecond fieldKind = iota
	fieldMinute
	fieldHour
	fieldDayOfMonth
	fieldMonth
	fieldDayOfWeek
	fieldYear
)

var fieldNames = [...]string{
	"second", "minute", "hour", "day-of-month", "month", "day-of-week", "year",
}

func (k fieldKind) String() string { return fieldNames[k] }

// fieldSet is the compiled form of one schedule field: the ordered sequence
// of admissible values. An empty set means the field is unconstrained and
// matches any value, not that it matches nothing.
type fieldSet struct {
	values []int
}

func (s fieldSet) unconstrained() bool { return len(s.values) == 0 }

func (s fieldSet) contains(v int) bool {
	for _, x := range s.values {
		if x == v {
			return true
		}
	}
	return false
}

// admits reports whether v satisfies the field: an unconstrained set admits
// everything.
func (s fieldSet) admits(v int) bool { return s.unconstrained() || s.contains(v) }

// max returns the largest admissible value. Only meaningful for a
// constrained set.
func (s fieldSet) max() int {
	m := s.values[0]
	for _, v := range s.values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// constraintSet is the compiled form of a whole expression: one fieldSet per
// schedule field.
type constraintSet struct {
	seconds    fieldSet
	minutes    fieldSet
	hours      fieldSet
	dayOfMonth fieldSet
	month      fieldSet
	dayOfWeek  fieldSet
	year       fieldSet
}
