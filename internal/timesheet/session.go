package timesheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// noteSeparator joins notes merged into an open pause. The report renderer
// emits notes into HTML unescaped, so the separator is a line break there.
const noteSeparator = "<br>"

// Session is one continuous span of tracked work. It owns an append-only
// event log in strictly increasing timestamp order, a deduplicated set of
// branch names touched while running, and its running/finalized status.
//
// End always covers the most recent event: every successful append and the
// finalize transition re-derive it as last timestamp + 1.
type Session struct {
	ID       string   `json:"id"`
	Start    int64    `json:"start"`
	End      int64    `json:"end"`
	Running  bool     `json:"running"`
	Branches []string `json:"branches"`
	Events   []Event  `json:"events"`
}

// NewSession creates a running session starting at the given timestamp, or
// at the current clock time when at is nil. Timestamp validation against
// the previous session is the Timesheet's job.
func NewSession(clock Clock, at *int64) Session {
	start := clock.Now()
	if at != nil {
		start = *at
	}
	return Session{
		ID:       uuid.New().String(),
		Start:    start,
		End:      start + 1,
		Running:  true,
		Branches: []string{},
		Events:   []Event{},
	}
}

// IsPaused reports whether the most recent event is a pause.
func (s *Session) IsPaused() bool {
	n := len(s.Events)
	return n > 0 && s.Events[n-1].Kind == KindPause
}

// validTimestamp reports whether ts is strictly after the last event, or
// after the session start if the log is empty.
func (s *Session) validTimestamp(ts int64) bool {
	if n := len(s.Events); n > 0 {
		return ts > s.Events[n-1].Timestamp
	}
	return ts > s.Start
}

// updateEnd re-derives End from the event log.
func (s *Session) updateEnd() {
	if n := len(s.Events); n > 0 {
		s.End = s.Events[n-1].Timestamp + 1
	}
}

// PushEvent validates and appends an event of the given kind. A nil at
// means "now" per the clock. On a recoverable validation failure the log
// and End are left untouched and a sentinel error is returned.
//
// Commits are special-cased: they ignore any explicit timestamp and are
// always stamped with the current clock time (commits are recorded after
// the fact, pinned to recording time), and an open pause is closed with a
// synthesized resume first.
func (s *Session) PushEvent(clock Clock, at *int64, note string, kind EventKind, hash string) error {
	if !s.Running {
		return ErrNotRunning
	}

	if kind == KindCommit {
		return s.pushCommit(clock, note, hash)
	}

	ts := clock.Now()
	if at != nil {
		if !s.validTimestamp(*at) {
			return ErrBadTimestamp
		}
		ts = *at
	}

	switch kind {
	case KindPause:
		if s.IsPaused() {
			return ErrAlreadyPaused
		}
		s.Events = append(s.Events, newPause(ts, note))
	case KindResume:
		if !s.IsPaused() {
			return ErrNotPaused
		}
		s.Events = append(s.Events, newResume(ts))
	case KindNote:
		if s.IsPaused() {
			// Amend the open pause instead of appending a new entry.
			pause := &s.Events[len(s.Events)-1]
			if pause.Note == "" {
				pause.Note = note
			} else {
				pause.Note += noteSeparator + note
			}
			return nil
		}
		s.Events = append(s.Events, newNote(ts, note))
	default:
		return fmt.Errorf("unknown event kind %q", kind)
	}

	s.updateEnd()
	return nil
}

// pushCommit appends a commit event at the current clock time. The append
// itself skips the strict-ordering check, so a synthesized resume and the
// commit may share a timestamp within the same second.
func (s *Session) pushCommit(clock Clock, message, hash string) error {
	if s.IsPaused() {
		if err := s.PushEvent(clock, nil, "", KindResume, ""); err != nil {
			return err
		}
	}
	s.Events = append(s.Events, newCommit(clock.Now(), hash, message))
	s.updateEnd()
	return nil
}

// Finalize closes the session at the given timestamp (or now). Finalizing
// an already-finalized session is a no-op. An invalid explicit timestamp
// is fatal: the interaction ends without any mutation.
func (s *Session) Finalize(clock Clock, at *int64) error {
	if !s.Running {
		return nil
	}
	ts := clock.Now()
	if at != nil {
		if !s.validTimestamp(*at) {
			return fatal(ErrBadTimestamp)
		}
		ts = *at
	}
	if s.IsPaused() {
		// Close the open pause. The only way this can fail is a resume in
		// the same second as the pause, which still must not block closing.
		_ = s.PushEvent(clock, &ts, "", KindResume, "")
	}
	s.Running = false
	s.End = ts + 1
	return nil
}

// AddBranch records a branch name touched during the session. Duplicates
// and additions to a finalized session are ignored.
func (s *Session) AddBranch(name string) {
	if !s.Running {
		return
	}
	i := sort.SearchStrings(s.Branches, name)
	if i < len(s.Branches) && s.Branches[i] == name {
		return
	}
	s.Branches = append(s.Branches, "")
	copy(s.Branches[i+1:], s.Branches[i:])
	s.Branches[i] = name
}

// PauseTime sums the closed pause intervals in the event log. An open
// pause contributes nothing until its resume is recorded.
func (s *Session) PauseTime() int64 {
	var total, lastPause int64
	for _, e := range s.Events {
		switch e.Kind {
		case KindPause:
			lastPause = e.Timestamp
		case KindResume:
			total += e.Timestamp - lastPause
		}
	}
	return total
}

// WorkingTime is the session span minus pause time. Computed fresh on
// every call since End advances as events arrive.
func (s *Session) WorkingTime() int64 {
	return s.End - s.Start - s.PauseTime()
}

// Status renders a short human-readable summary relative to now.
func (s *Session) Status(now int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session running since %s.\n", FormatDuration(now-s.Start))
	if s.IsPaused() {
		last := s.Events[len(s.Events)-1]
		fmt.Fprintf(&b, "    Paused since %s.\n", FormatDuration(now-last.Timestamp))
	} else if n := len(s.Events); n == 0 {
		b.WriteString("    No events in this session yet!\n")
	} else {
		last := s.Events[n-1]
		fmt.Fprintf(&b, "    Last event: %s, %s ago.\n", last.Label(), FormatDuration(now-last.Timestamp))
	}
	if n := len(s.Branches); n > 0 {
		fmt.Fprintf(&b, "Worked on %d branches: %s", n, strings.Join(s.Branches, " "))
	}
	return b.String()
}
