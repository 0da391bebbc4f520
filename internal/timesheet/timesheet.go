package timesheet

import (
	"fmt"
	"strings"
)

// Timesheet is the root aggregate: sheet-level metadata plus the ordered
// list of sessions. All mutating operations act on the last session.
type Timesheet struct {
	Start       int64     `json:"start"`
	End         int64     `json:"end"`
	User        string    `json:"user"`
	ShowCommits bool      `json:"show_commits"`
	Repo        string    `json:"repo,omitempty"`
	Sessions    []Session `json:"sessions"`

	clock Clock
}

// New creates a timesheet owned by user, starting now. A nil clock means
// the system clock.
func New(user string, clock Clock) *Timesheet {
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now()
	return &Timesheet{
		Start:       now,
		End:         now + 1,
		User:        user,
		ShowCommits: true,
		Sessions:    []Session{},
		clock:       clock,
	}
}

// SetClock replaces the timestamp source. Sheets loaded from disk have no
// clock until one is set; the system clock is the fallback.
func (t *Timesheet) SetClock(clock Clock) { t.clock = clock }

func (t *Timesheet) now() Clock {
	if t.clock == nil {
		t.clock = SystemClock{}
	}
	return t.clock
}

// LastSession returns the most recently appended session, or nil.
func (t *Timesheet) LastSession() *Session {
	if n := len(t.Sessions); n > 0 {
		return &t.Sessions[n-1]
	}
	return nil
}

// NewSession appends a new running session. It fails with ErrSessionRunning
// while the last session is unfinalized. An explicit timestamp must exceed
// the last session's end (or the sheet start); a violation is fatal.
func (t *Timesheet) NewSession(at *int64) error {
	if last := t.LastSession(); last != nil && last.Running {
		return ErrSessionRunning
	}
	if at != nil {
		bound := t.Start
		if last := t.LastSession(); last != nil {
			bound = last.End
		}
		if *at <= bound {
			return fatal(ErrBadTimestamp)
		}
	}
	t.Sessions = append(t.Sessions, NewSession(t.now(), at))
	return nil
}

// EndSession refreshes the last session's end from its log and finalizes
// it. Returns ErrNoSession when the sheet has no sessions.
func (t *Timesheet) EndSession(at *int64) error {
	last := t.LastSession()
	if last == nil {
		return ErrNoSession
	}
	last.updateEnd()
	return last.Finalize(t.now(), at)
}

// Pause records a pause in the last session, with an optional note.
func (t *Timesheet) Pause(at *int64, note string) error {
	last := t.LastSession()
	if last == nil {
		return ErrNoSession
	}
	return last.PushEvent(t.now(), at, note, KindPause, "")
}

// Resume ends the open pause in the last session.
func (t *Timesheet) Resume(at *int64) error {
	last := t.LastSession()
	if last == nil {
		return ErrNoSession
	}
	return last.PushEvent(t.now(), at, "", KindResume, "")
}

// Note records a free-text note in the last session. While paused the text
// is merged into the open pause's note instead of a new log entry.
func (t *Timesheet) Note(at *int64, text string) error {
	last := t.LastSession()
	if last == nil {
		return ErrNoSession
	}
	return last.PushEvent(t.now(), at, text, KindNote, "")
}

// AddCommit records a commit event, starting a fresh session first when
// there is none or the last one is finalized. Commits always land in a
// running session, stamped with the current clock time.
func (t *Timesheet) AddCommit(hash, message string) error {
	last := t.LastSession()
	if last == nil || !last.Running {
		if err := t.NewSession(nil); err != nil {
			return err
		}
		last = t.LastSession()
	}
	return last.PushEvent(t.now(), nil, message, KindCommit, hash)
}

// AddBranch records a branch name in the last session, if any.
func (t *Timesheet) AddBranch(name string) {
	if last := t.LastSession(); last != nil {
		last.AddBranch(name)
	}
}

// SetRepo sets the repository identifier shown in reports.
func (t *Timesheet) SetRepo(repo string) { t.Repo = repo }

// SetShowCommits toggles commit visibility in rendered reports.
func (t *Timesheet) SetShowCommits(setting bool) { t.ShowCommits = setting }

// PauseTime sums pause time over all sessions.
func (t *Timesheet) PauseTime() int64 {
	var total int64
	for i := range t.Sessions {
		total += t.Sessions[i].PauseTime()
	}
	return total
}

// WorkingTime sums working time over all sessions.
func (t *Timesheet) WorkingTime() int64 {
	var total int64
	for i := range t.Sessions {
		total += t.Sessions[i].WorkingTime()
	}
	return total
}

// Status renders a sheet-level summary including the last session.
func (t *Timesheet) Status() string {
	now := t.now().Now()
	var b strings.Builder
	fmt.Fprintf(&b, "Sheet running for %s\n", FormatDuration(now-t.Start))
	if n := len(t.Sessions); n == 0 {
		b.WriteString("No sessions yet.\n")
	} else {
		fmt.Fprintf(&b, "%d session(s) so far.\nLast session:\n%s", n, t.Sessions[n-1].Status(now))
	}
	return b.String()
}

// LastSessionStatus renders the last session's summary on its own.
func (t *Timesheet) LastSessionStatus() string {
	last := t.LastSession()
	if last == nil {
		return "No session yet."
	}
	return last.Status(t.now().Now())
}
