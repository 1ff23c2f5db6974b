package contract

import (
	"context"

	"mindshift-be/internal/entity"

	"github.com/google/uuid"
)

// StatRepository is the per-user archetype detection counter table.
type StatRepository interface {
	FindOne(ctx context.Context, userId uuid.UUID, archetype string) (*entity.ArchetypeStat, error)
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ArchetypeStat, error)
	Save(ctx context.Context, stat *entity.ArchetypeStat) error
}
