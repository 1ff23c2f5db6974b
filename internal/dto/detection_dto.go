package dto

import (
	"time"

	"mindshift-be/pkg/archetype"

	"github.com/google/uuid"
)

// DetectRequest carries the self-reported signal vector. Every field is
// optional; the engine defaults whatever is missing.
type DetectRequest struct {
	archetype.DetectionSignals
}

type DetectionResponse struct {
	Id                  uuid.UUID                  `json:"id"`
	Primary             archetype.Archetype        `json:"primary"`
	Secondary           *archetype.Archetype       `json:"secondary,omitempty"`
	ConfidencePrimary   float64                    `json:"confidence_primary"`
	ConfidenceSecondary float64                    `json:"confidence_secondary"`
	Signals             archetype.DetectionSignals `json:"signals"`
	Message             string                     `json:"message"`
	Emoji               string                     `json:"emoji"`
	CatalogKey          string                     `json:"catalog_key"`
	DetectedAt          time.Time                  `json:"detected_at"`
}

type HistoryQuery struct {
	Archetype string `json:"archetype"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}

type DetectionHistoryResponse struct {
	Items  []*DetectionResponse `json:"items"`
	Total  int64                `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

type ArchetypeStatResponse struct {
	Archetype      archetype.Archetype `json:"archetype"`
	Count          int64               `json:"count"`
	LastDetectedAt time.Time           `json:"last_detected_at"`
}
