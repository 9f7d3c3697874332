package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventResidentCreated EventType = "resident_created"
	EventResidentUpdated EventType = "resident_updated"
	EventResidentDeleted EventType = "resident_deleted"
)

// Event represents a registry mutation emitted by the service.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResidentID string      `json:"resident_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// ResidentCreatedPayload payload.
type ResidentCreatedPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ResidentUpdatedPayload payload.
type ResidentUpdatedPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ResidentDeletedPayload payload.
type ResidentDeletedPayload struct {
	Name string `json:"name"`
}
