package dto

import (
	"time"

	"github.com/google/uuid"
)

// PushMessage is the payload fanned out over the WebSocket hub.
type PushMessage struct {
	Id        uuid.UUID              `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// StatsMessage is the in-process watermill payload emitted after every
// detection and folded into archetype_stats by the consumer.
type StatsMessage struct {
	UserId     uuid.UUID `json:"user_id"`
	Primary    string    `json:"primary"`
	Secondary  *string   `json:"secondary,omitempty"`
	DetectedAt time.Time `json:"detected_at"`
}
