package entity

import (
	"time"

	"mindshift-be/pkg/archetype"

	"github.com/google/uuid"
)

// ArchetypeStat is the per-user running count of detections per archetype,
// maintained asynchronously by the stats consumer.
type ArchetypeStat struct {
	UserId         uuid.UUID
	Archetype      archetype.Archetype
	Count          int64
	LastDetectedAt time.Time
}
