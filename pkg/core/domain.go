package core

import (
	"fmt"
	"time"
)

// EventType represents the type of change observed on a note.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a note under the watch root.
type Event struct {
	Type      EventType
	Path      string // relative to the watch root, slash-separated
	Timestamp int64  // Unix timestamp
}

// String implements the lifecycle Event interface.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

// FileTimes carries the clock values the host filesystem stores for a note.
// The stamper turns these into header field values; it never reads the
// clock itself.
type FileTimes struct {
	Created  time.Time
	Modified time.Time
}

// Clock returns the current time. Injectable for tests.
type Clock func() time.Time
