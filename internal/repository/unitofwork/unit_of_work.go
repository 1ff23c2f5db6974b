package unitofwork

import (
	"context"

	"mindshift-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DetectionRepository() contract.DetectionRepository
	CurrentDetectionRepository() contract.CurrentDetectionRepository
	EffectivenessRepository() contract.EffectivenessRepository
	StatRepository() contract.StatRepository
}
