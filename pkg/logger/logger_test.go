package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStandardLogger_Prefixes(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewStandardLogger(log.New(buf, "", 0))

	l.Info("loaded %d schedules", 3)
	l.Warning("job %s overran", "backup")
	l.Error("job %s failed: %v", "backup", "exit status 1")

	output := buf.String()
	for _, want := range []string{
		"[INFO] loaded 3 schedules",
		"[WARNING] job backup overran",
		"[ERROR] job backup failed: exit status 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestStandardLogger_Close(t *testing.T) {
	l := NewStandardLogger(log.New(&bytes.Buffer{}, "", 0))
	if err := l.Close(); err != nil {
		t.Errorf("expected nil from Close, got %v", err)
	}
}

func TestNopLogger_Discards(t *testing.T) {
	var l Logger = NopLogger{}
	l.Info("ignored")
	l.Warning("ignored")
	l.Error("ignored")
	if err := l.Close(); err != nil {
		t.Errorf("expected nil from Close, got %v", err)
	}
}

func TestMockLogger_Records(t *testing.T) {
	m := NewMockLogger()
	m.Info("a %d", 1)
	m.Error("b")

	if len(m.InfoCalls) != 1 || m.InfoCalls[0] != "a 1" {
		t.Errorf("unexpected info calls: %v", m.InfoCalls)
	}
	if len(m.ErrorCalls) != 1 || m.ErrorCalls[0] != "b" {
		t.Errorf("unexpected error calls: %v", m.ErrorCalls)
	}
	if err := m.Close(); err != nil || !m.CloseCalled {
		t.Error("expected Close to be recorded")
	}
}
