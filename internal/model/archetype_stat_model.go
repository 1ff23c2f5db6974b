package model

import (
	"time"

	"github.com/google/uuid"
)

type ArchetypeStat struct {
	UserId         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Archetype      string    `gorm:"type:varchar(32);primaryKey"`
	Count          int64     `gorm:"not null;default:0"`
	LastDetectedAt time.Time `gorm:"not null"`
}

func (ArchetypeStat) TableName() string {
	return "archetype_stats"
}
