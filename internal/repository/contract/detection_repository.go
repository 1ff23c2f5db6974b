package contract

import (
	"context"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/repository/specification"

	"github.com/google/uuid"
)

// DetectionRepository is the append-only detection history store.
type DetectionRepository interface {
	Create(ctx context.Context, detection *entity.ArchetypeDetection) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArchetypeDetection, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

// CurrentDetectionRepository holds the most recent detection per user.
type CurrentDetectionRepository interface {
	Upsert(ctx context.Context, detection *entity.ArchetypeDetection) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.ArchetypeDetection, error)
}
