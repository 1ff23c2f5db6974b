package model

import (
	"time"

	"github.com/google/uuid"
)

type InterventionEffectiveness struct {
	UserId         uuid.UUID `gorm:"type:uuid;primaryKey"`
	InterventionId string    `gorm:"type:varchar(64);primaryKey"`
	Score          float64   `gorm:"not null;default:0.5"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (InterventionEffectiveness) TableName() string {
	return "intervention_effectiveness"
}
