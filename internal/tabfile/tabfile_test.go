package tabfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/warpdl/warpcron/pkg/cronexpr"
)

const sampleTab = `# nightly maintenance
0 0 3 * * ? * /usr/local/bin/backup --all

# every 15 seconds during business hours, weekdays only
*/15 * 9-17 ? * 2-6 * /usr/local/bin/poll-queue
`

func TestParse_SkipsCommentsAndBlanks(t *testing.T) {
	entries, err := Parse(sampleTab)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Expr != "0 0 3 * * ? *" {
		t.Errorf("unexpected first expression %q", entries[0].Expr)
	}
	if got := strings.Join(entries[0].Command, " "); got != "/usr/local/bin/backup --all" {
		t.Errorf("unexpected first command %q", got)
	}
	if entries[0].Line != 2 {
		t.Errorf("expected line 2, got %d", entries[0].Line)
	}

	if entries[1].Expr != "*/15 * 9-17 ? * 2-6 *" {
		t.Errorf("unexpected second expression %q", entries[1].Expr)
	}
	if entries[1].Line != 5 {
		t.Errorf("expected line 5, got %d", entries[1].Line)
	}
}

func TestParse_MissingCommand(t *testing.T) {
	_, err := Parse("0 0 3 * * ? *\n")
	if err == nil {
		t.Fatal("expected error for line without a command")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected line number in error, got: %v", err)
	}
}

func TestParse_BadExpression(t *testing.T) {
	_, err := Parse("0 0 x * * ? * /bin/true\n")
	if err == nil {
		t.Fatal("expected error for malformed expression")
	}
	var verr *cronexpr.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected wrapped *cronexpr.ValidationError, got %T: %v", err, err)
	}
}

func TestLoad_FromMemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/etc/warptab", []byte(sampleTab), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	entries, err := Load(fs, "/etc/warptab")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "/nope")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
