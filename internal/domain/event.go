package domain

import "time"

type EventKind string

const (
	EventAdded     EventKind = "assignment.added"
	EventReordered EventKind = "assignment.reordered"
	EventAnnotated EventKind = "assignment.annotated"
	EventNotified  EventKind = "assignment.notified"
)

// Represents a completed board operation, emitted to the event journal.
// Events are an outbound audit trail; the board is never rebuilt from them.
type DispatchEvent struct {
	EventID      string
	Kind         EventKind
	AssignmentID string
	Detail       map[string]string
	At           time.Time
}
