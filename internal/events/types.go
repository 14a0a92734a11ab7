package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventStoreChanged fires after any successful mutation of the store
	EventStoreChanged EventType = "store_changed"

	// EventSaved fires after the store is written to the backing file
	EventSaved EventType = "saved"

	// EventSaveFailed fires when a write to the backing file fails; the
	// in-memory mutation is kept so a retry stays possible
	EventSaveFailed EventType = "save_failed"
)

// Event represents a store change notification
type Event struct {
	Type       EventType
	ProjectID  string    // Which project was touched; empty for store-wide changes
	Message    string    // Human-readable detail for status lines and toasts
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
