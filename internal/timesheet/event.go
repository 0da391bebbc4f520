// Package timesheet implements the session/event state machine and the
// time-accounting model behind trk: a Timesheet owns an ordered list of
// Sessions, each Session owns an ordered event log, and working/paused
// durations are derived from the log on demand.
package timesheet

// EventKind identifies one of the closed set of event variants.
type EventKind string

const (
	KindPause  EventKind = "pause"
	KindResume EventKind = "resume"
	KindNote   EventKind = "note"
	KindCommit EventKind = "commit"
)

// Event is a single timestamped occurrence in a session's log. Hash is
// populated only for commit events; use the constructors below rather than
// building Events by hand so the variant set stays closed.
type Event struct {
	Timestamp int64     `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	Kind      EventKind `json:"kind"`
	Hash      string    `json:"hash,omitempty"`
}

func newPause(ts int64, note string) Event {
	return Event{Timestamp: ts, Note: note, Kind: KindPause}
}

func newResume(ts int64) Event {
	return Event{Timestamp: ts, Kind: KindResume}
}

func newNote(ts int64, note string) Event {
	return Event{Timestamp: ts, Note: note, Kind: KindNote}
}

func newCommit(ts int64, hash, message string) Event {
	return Event{Timestamp: ts, Note: message, Kind: KindCommit, Hash: hash}
}

// Label returns a short human-readable name for the event kind.
func (e Event) Label() string {
	switch e.Kind {
	case KindPause:
		return "Pause"
	case KindResume:
		return "Resume"
	case KindNote:
		return "Note"
	case KindCommit:
		return "Commit"
	}
	return string(e.Kind)
}
