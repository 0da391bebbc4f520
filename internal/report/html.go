// Package report renders a timesheet (or its last session) as an HTML
// document, optionally post-processes it with tidy, and opens it in the
// user's viewer.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/fakeyudi/trk/internal/timesheet"
)

// stylesheet link blocks. Hiding commits is done purely in CSS so the
// document content is identical either way.
const (
	styleDefault = `<link rel="stylesheet" type="text/css" href="style.css">
`
	styleNoCommits = `<link rel="stylesheet" type="text/css" href="style.css">
<link rel="stylesheet" type="text/css" href="no_commit.css">
`
)

func stylesheets(showCommits bool) string {
	if showCommits {
		return styleDefault
	}
	return styleNoCommits
}

// EventHTML renders one event log entry.
func EventHTML(e timesheet.Event) string {
	date := timesheet.FormatDate(e.Timestamp)
	switch e.Kind {
	case timesheet.KindPause:
		if e.Note != "" {
			return fmt.Sprintf(`<div class="entry pause">%s: Started a pause
    <p class="mininote">%s</p>
</div>`, date, e.Note)
		}
		return fmt.Sprintf(`<div class="entry pause">%s: Started a pause
</div>`, date)
	case timesheet.KindResume:
		return fmt.Sprintf(`<div class="entry resume">%s: Resumed work
<hr>
</div>`, date)
	case timesheet.KindNote:
		return fmt.Sprintf(`<div class="entry note">%s: Note: %s
<hr>
</div>`, date, e.Note)
	case timesheet.KindCommit:
		return fmt.Sprintf(`<div class="entry commit">%s: Commit id: %s
    <p class="mininote">message: %s</p>
  <hr>
</div>`, date, e.Hash, e.Note)
	}
	return ""
}

// SessionHTML renders one session section with its event log and summary.
func SessionHTML(s *timesheet.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<section class="session">
    <h1 class="sessionheader">Session on %s</h1>`, timesheet.FormatDate(s.Start))

	for _, e := range s.Events {
		b.WriteString(EventHTML(e))
	}

	fmt.Fprintf(&b, `<h2 class="sessionfooter">Ended on %s</h2>`, timesheet.FormatDate(s.End))

	var branches string
	if n := len(s.Branches); n > 0 {
		branches = fmt.Sprintf("Worked on %d branches: %s ", n, strings.Join(s.Branches, " "))
	}

	fmt.Fprintf(&b, `<section class="summary">
    <p>%s</p>
    <p>Worked for %s</p>
    <p>Paused for %s</p>
</section>`,
		branches,
		timesheet.FormatDuration(s.WorkingTime()),
		timesheet.FormatDuration(s.PauseTime()))

	b.WriteString("</section>")
	return b.String()
}

// SheetHTML renders the whole timesheet. When since is non-nil only
// sessions starting after it are included; the sheet-level summary always
// covers all sessions.
func SheetHTML(t *timesheet.Timesheet, since *int64) string {
	cutoff := t.Start
	if since != nil {
		cutoff = *since
	}

	var sessions strings.Builder
	for i := range t.Sessions {
		if t.Sessions[i].Start > cutoff {
			sessions.WriteString(SessionHTML(&t.Sessions[i]))
			sessions.WriteString("<hr>")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
    <head>
        %s
        <title>Timesheet for %s</title>
    </head>
    <body>
    %s`, stylesheets(t.ShowCommits), t.User, sessions.String())

	fmt.Fprintf(&b, `<section class="summary">
    <p>Worked for %s</p>
    <p>Paused for %s</p>
</section>`,
		timesheet.FormatDuration(t.WorkingTime()),
		timesheet.FormatDuration(t.PauseTime()))
	b.WriteString("</body>\n</html>")
	return b.String()
}

// LastSessionHTML renders a standalone document for the last session.
// Returns "" when the sheet has no sessions.
func LastSessionHTML(t *timesheet.Timesheet) string {
	last := t.LastSession()
	if last == nil {
		return ""
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  %s
  <title>Session for %s</title>
</head>
<body>
%s
</body>
</html>`, stylesheets(t.ShowCommits), t.User, SessionHTML(last))
}

// WriteSheet writes the sheet document to path.
func WriteSheet(t *timesheet.Timesheet, path string, since *int64) error {
	if err := os.WriteFile(path, []byte(SheetHTML(t, since)), 0o644); err != nil {
		return fmt.Errorf("could not write report to %s: %w", path, err)
	}
	return nil
}

// WriteLastSession writes the last-session document to path. A sheet with
// no sessions writes nothing and is not an error.
func WriteLastSession(t *timesheet.Timesheet, path string) error {
	html := LastSessionHTML(t)
	if html == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("could not write report to %s: %w", path, err)
	}
	return nil
}
