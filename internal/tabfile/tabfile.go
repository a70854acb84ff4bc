// Package tabfile loads crontab-style schedule tables for warpcron.
// Each non-blank, non-comment line holds a seven-field schedule expression
// (second minute hour day-of-month month day-of-week year) followed by the
// command to run.
package tabfile

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/warpdl/warpcron/pkg/cronexpr"
)

// exprFieldCount is the number of leading schedule fields on a table line.
const exprFieldCount = 7

// Entry is one line of a schedule table.
type Entry struct {
	// Expr is the seven-field schedule expression.
	Expr string
	// Command is the program and its arguments, split on whitespace.
	Command []string
	// Line is the 1-based line number the entry came from.
	Line int
}

// Load reads and parses a schedule table from fs.
// Every expression is compile-checked, so a returned nil error means each
// entry can be handed to cronexpr.Compile without failing.
func Load(fs afero.Fs, path string) ([]Entry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error: cannot read schedule table %q: %w", path, err)
	}
	entries, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse parses the text of a schedule table.
// Blank lines and lines starting with '#' are skipped.
func Parse(src string) ([]Entry, error) {
	var entries []Entry
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < exprFieldCount+1 {
			return nil, fmt.Errorf("line %d: expected 7 schedule fields followed by a command", i+1)
		}
		expr := strings.Join(fields[:exprFieldCount], " ")
		if _, err := cronexpr.Compile(expr); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		entries = append(entries, Entry{
			Expr:    expr,
			Command: fields[exprFieldCount:],
			Line:    i + 1,
		})
	}
	return entries, nil
}
