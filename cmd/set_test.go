package cmd

import (
	"strings"
	"testing"
)

func TestSetRepo(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "init", "Alice")

	mustRun(t, "set", "repo", "https://example.com/alice/proj")

	sheet := loadCurrentSheet(t)
	if sheet.Repo != "https://example.com/alice/proj" {
		t.Errorf("Repo = %q", sheet.Repo)
	}
}

func TestSetShowCommits(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "init", "Alice")

	mustRun(t, "set", "show-commits", "false")
	if loadCurrentSheet(t).ShowCommits {
		t.Error("ShowCommits should be false")
	}

	mustRun(t, "set", "show-commits", "true")
	if !loadCurrentSheet(t).ShowCommits {
		t.Error("ShowCommits should be true")
	}
}

func TestSetShowCommitsBadValue(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "init", "Alice")

	out := mustRun(t, "set", "show-commits", "maybe")
	if !strings.Contains(out, "Expected true or false") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestClearKeepsUser(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "init", "Alice")
	mustRun(t, "begin")
	mustRun(t, "end")

	out := mustRun(t, "clear")
	if !strings.Contains(out, "Timesheet cleared.") {
		t.Errorf("unexpected output: %q", out)
	}
	sheet := loadCurrentSheet(t)
	if sheet.User != "Alice" {
		t.Errorf("User = %q, want Alice", sheet.User)
	}
	if len(sheet.Sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(sheet.Sessions))
	}
}
