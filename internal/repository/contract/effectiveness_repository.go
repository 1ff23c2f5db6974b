package contract

import (
	"context"

	"mindshift-be/internal/entity"

	"github.com/google/uuid"
)

// EffectivenessRepository is the per-user intervention score table.
type EffectivenessRepository interface {
	FindOne(ctx context.Context, userId uuid.UUID, interventionId string) (*entity.InterventionEffectiveness, error)
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.InterventionEffectiveness, error)
	Upsert(ctx context.Context, effectiveness *entity.InterventionEffectiveness) error
}
