package events

import "time"

// Topic names for the in-process bus.
const (
	TopicAssistantOutcomes = "assistant.outcomes"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "INTENT_DISPATCHED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
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

// NewIntentDispatched records one dispatched intent and what it did. Consumers
// use it as the UI refresh signal for the affected domain.
func NewIntentDispatched(userId, action, status, reference string) BaseEvent {
	return BaseEvent{
		Type: "INTENT_DISPATCHED",
		Data: map[string]interface{}{
			"user_id":   userId,
			"action":    action,
			"status":    status,
			"reference": reference,
		},
		OccurredAt: time.Now(),
	}
}
