package cmd

import (
	"strings"
	"testing"
)

func TestStatusNoSession(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "init", "Alice")

	out := mustRun(t, "status")
	if !strings.Contains(out, "No session yet.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestStatusRunningSession(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "init", "Alice")
	mustRun(t, "begin")

	out := mustRun(t, "status")
	if !strings.Contains(out, "Session running since") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestStatusSheet(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "init", "Alice")
	mustRun(t, "begin")

	out := mustRun(t, "status", "--sheet")
	if !strings.Contains(out, "Sheet running for") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "1 session(s) so far.") {
		t.Errorf("unexpected output: %q", out)
	}
}
