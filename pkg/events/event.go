package events

import "time"

// Event is the contract for everything published on the events stream.
type Event interface {
	// EventType returns the subject suffix, e.g. "INTERACTION_RECORDED".
	EventType() string

	// Payload returns the event body.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used for advisor interaction
// events; dedicated types are only worth it once consumers need more than
// the payload map.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
