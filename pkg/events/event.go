package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all domain events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "ARCHETYPE_DETECTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

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

// NewArchetypeDetected builds the event emitted after every classification.
func NewArchetypeDetected(userId uuid.UUID, primary string, secondary *string, message, emoji string) Event {
	data := map[string]interface{}{
		"user_id": userId.String(),
		"primary": primary,
		"message": message,
		"emoji":   emoji,
	}
	if secondary != nil {
		data["secondary"] = *secondary
	}
	return BaseEvent{Type: "ARCHETYPE_DETECTED", Data: data, OccurredAt: time.Now()}
}

// NewFeedbackRecorded builds the event emitted after a feedback write.
func NewFeedbackRecorded(userId uuid.UUID, interventionId string, helpful bool, score float64) Event {
	return BaseEvent{
		Type: "FEEDBACK_RECORDED",
		Data: map[string]interface{}{
			"user_id":         userId.String(),
			"intervention_id": interventionId,
			"helpful":         helpful,
			"score":           score,
		},
		OccurredAt: time.Now(),
	}
}

// NewInterventionMastered fires when an effectiveness score first saturates
// at 1.0. Drives the celebration push in the app.
func NewInterventionMastered(userId uuid.UUID, interventionId string) Event {
	return BaseEvent{
		Type: "INTERVENTION_MASTERED",
		Data: map[string]interface{}{
			"user_id":         userId.String(),
			"intervention_id": interventionId,
		},
		OccurredAt: time.Now(),
	}
}
