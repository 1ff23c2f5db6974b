package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ArchetypeDetection is the append-only history row. Rows are never updated
// after insert.
type ArchetypeDetection struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID      `gorm:"type:uuid;not null;index"`
	PrimaryArchetype    string         `gorm:"type:varchar(32);not null;index"`
	SecondaryArchetype  *string        `gorm:"type:varchar(32)"`
	ConfidencePrimary   float64        `gorm:"not null"`
	ConfidenceSecondary float64        `gorm:"not null"`
	Signals             datatypes.JSON `gorm:"type:jsonb"`
	Message             string         `gorm:"type:text"`
	Emoji               string         `gorm:"type:varchar(16)"`
	DetectedAt          time.Time      `gorm:"not null;index"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
}

func (ArchetypeDetection) TableName() string {
	return "archetype_detections"
}

// CurrentDetection holds the single most recent detection per user,
// overwritten on every classification call.
type CurrentDetection struct {
	UserId              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DetectionId         uuid.UUID      `gorm:"type:uuid;not null"`
	PrimaryArchetype    string         `gorm:"type:varchar(32);not null"`
	SecondaryArchetype  *string        `gorm:"type:varchar(32)"`
	ConfidencePrimary   float64        `gorm:"not null"`
	ConfidenceSecondary float64        `gorm:"not null"`
	Signals             datatypes.JSON `gorm:"type:jsonb"`
	Message             string         `gorm:"type:text"`
	Emoji               string         `gorm:"type:varchar(16)"`
	DetectedAt          time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

func (CurrentDetection) TableName() string {
	return "current_detections"
}
