package cmd

const DESCRIPTION = `
Warpcron is a toolkit for Quartz-style seven-field schedule
expressions (second minute hour day-of-month month day-of-week
year). It computes upcoming occurrences, validates expressions,
and runs schedule tables in the foreground.
`

const (
	NextDescription = `The next command compiles a schedule expression and prints
the upcoming occurrences, one per line. By default it starts
from the present moment; use --from to supply a reference
instant instead.

Example:
        warpcron next "0 0 12 * * ? *"
        warpcron next -n 5 -f "2024-01-01 00:00:00" "0 0 12 * * ? *"

`
	ValidateDescription = `The validate command compile-checks a schedule expression
and reports the first problem it finds. It exits non-zero
for invalid expressions so it can gate scripts and CI.

Example:
        warpcron validate "*/15 * 9-17 ? * 2-6 *"

`
	WatchDescription = `The watch command compiles a schedule expression and renders
a live countdown bar until its next occurrence fires.

Example:
        warpcron watch "0 30 * * * ? *"

`
	RunDescription = `The run command loads a schedule table and runs it in the
foreground until interrupted. Each line of the table holds a
seven-field expression followed by the command to execute.
Nothing is persisted; state is rebuilt from the table on the
next start.

Example:
        warpcron run -f /etc/warptab

`
)
