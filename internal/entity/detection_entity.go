package entity

import (
	"time"

	"mindshift-be/pkg/archetype"

	"github.com/google/uuid"
)

type ArchetypeDetection struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	Primary             archetype.Archetype
	Secondary           *archetype.Archetype
	ConfidencePrimary   float64
	ConfidenceSecondary float64
	Signals             archetype.DetectionSignals
	Message             string
	Emoji               string
	DetectedAt          time.Time
	CreatedAt           time.Time
}

// CatalogKey returns the intervention catalog key for this detection.
func (d *ArchetypeDetection) CatalogKey() string {
	return archetype.Key(d.Primary, d.Secondary)
}
