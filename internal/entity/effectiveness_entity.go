package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterventionEffectiveness is one per-user, per-intervention score row.
type InterventionEffectiveness struct {
	UserId         uuid.UUID
	InterventionId string
	Score          float64
	UpdatedAt      time.Time
}
