package report_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fakeyudi/trk/internal/report"
	"github.com/fakeyudi/trk/internal/timesheet"
)

type fixedClock struct{ now int64 }

func (c *fixedClock) Now() int64 { return c.now }

func i64(v int64) *int64 { return &v }

// buildSheet creates a sheet with two finalized sessions: one with a pause
// interval and a note, one with a commit and a branch.
func buildSheet(t *testing.T) *timesheet.Timesheet {
	t.Helper()
	clock := &fixedClock{now: 1000}
	sheet := timesheet.New("Ada", clock)

	if err := sheet.NewSession(i64(2000)); err != nil {
		t.Fatal(err)
	}
	if err := sheet.Pause(i64(2100), "coffee"); err != nil {
		t.Fatal(err)
	}
	if err := sheet.Resume(i64(2200)); err != nil {
		t.Fatal(err)
	}
	if err := sheet.Note(i64(2300), "reviewed design"); err != nil {
		t.Fatal(err)
	}
	if err := sheet.EndSession(i64(2400)); err != nil {
		t.Fatal(err)
	}

	clock.now = 5000
	if err := sheet.NewSession(nil); err != nil {
		t.Fatal(err)
	}
	clock.now = 5100
	if err := sheet.AddCommit("abc1234", "fix parser"); err != nil {
		t.Fatal(err)
	}
	sheet.AddBranch("feature/x")
	if err := sheet.EndSession(i64(5200)); err != nil {
		t.Fatal(err)
	}
	return sheet
}

func TestSheetHTMLStructure(t *testing.T) {
	sheet := buildSheet(t)
	html := report.SheetHTML(sheet, nil)

	if got := strings.Count(html, `<section class="session">`); got != 2 {
		t.Errorf("expected 2 session sections, got %d", got)
	}
	for _, want := range []string{
		"<title>Timesheet for Ada</title>",
		`<div class="entry pause">`,
		`<p class="mininote">coffee</p>`,
		`<div class="entry resume">`,
		"Note: reviewed design",
		"Commit id: abc1234",
		"message: fix parser",
		"Worked on 1 branches: feature/x",
		"Worked for",
		"Paused for",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("sheet html missing %q", want)
		}
	}
}

func TestSheetHTMLSinceFilter(t *testing.T) {
	sheet := buildSheet(t)

	// Only the second session starts after t=3000.
	html := report.SheetHTML(sheet, i64(3000))
	if got := strings.Count(html, `<section class="session">`); got != 1 {
		t.Errorf("expected 1 session section after filter, got %d", got)
	}
	if strings.Contains(html, "reviewed design") {
		t.Error("filtered session still rendered")
	}
	if !strings.Contains(html, "Commit id: abc1234") {
		t.Error("unfiltered session missing")
	}
}

func TestShowCommitsStylesheetSwitch(t *testing.T) {
	sheet := buildSheet(t)

	if html := report.SheetHTML(sheet, nil); strings.Contains(html, "no_commit.css") {
		t.Error("no_commit.css linked while ShowCommits is true")
	}
	sheet.SetShowCommits(false)
	if html := report.SheetHTML(sheet, nil); !strings.Contains(html, "no_commit.css") {
		t.Error("no_commit.css not linked while ShowCommits is false")
	}
}

func TestLastSessionHTML(t *testing.T) {
	clock := &fixedClock{now: 1000}
	empty := timesheet.New("Ada", clock)
	if got := report.LastSessionHTML(empty); got != "" {
		t.Errorf("LastSessionHTML on empty sheet = %q, want empty", got)
	}

	sheet := buildSheet(t)
	html := report.LastSessionHTML(sheet)
	if !strings.Contains(html, "<title>Session for Ada</title>") {
		t.Error("last-session html missing title")
	}
	if got := strings.Count(html, `<section class="session">`); got != 1 {
		t.Errorf("expected exactly the last session, got %d sections", got)
	}
	if strings.Contains(html, "reviewed design") {
		t.Error("last-session html contains an earlier session's events")
	}
}

func TestWriteSheet(t *testing.T) {
	sheet := buildSheet(t)
	path := filepath.Join(t.TempDir(), "timesheet.html")

	if err := report.WriteSheet(sheet, path, nil); err != nil {
		t.Fatalf("WriteSheet: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Error("report is not an html document")
	}
}

func TestWriteLastSessionNoSessions(t *testing.T) {
	clock := &fixedClock{now: 1000}
	sheet := timesheet.New("Ada", clock)
	path := filepath.Join(t.TempDir(), "session.html")

	if err := report.WriteLastSession(sheet, path); err != nil {
		t.Fatalf("WriteLastSession: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file written for sheet with no sessions")
	}
}

func TestMergedPauseNoteRendersWithSeparator(t *testing.T) {
	clock := &fixedClock{now: 1000}
	sheet := timesheet.New("Ada", clock)
	if err := sheet.NewSession(i64(2000)); err != nil {
		t.Fatal(err)
	}
	if err := sheet.Pause(i64(2100), ""); err != nil {
		t.Fatal(err)
	}
	if err := sheet.Note(i64(2150), "first"); err != nil {
		t.Fatal(err)
	}
	if err := sheet.Note(i64(2160), "second"); err != nil {
		t.Fatal(err)
	}

	html := report.SheetHTML(sheet, nil)
	want := fmt.Sprintf(`<p class="mininote">%s</p>`, "first<br>second")
	if !strings.Contains(html, want) {
		t.Errorf("merged pause note not rendered, want %q", want)
	}
}
