package implementation

import (
	"context"
	"errors"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/mapper"
	"mindshift-be/internal/model"
	"mindshift-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CurrentDetectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DetectionMapper
}

func NewCurrentDetectionRepository(db *gorm.DB) contract.CurrentDetectionRepository {
	return &CurrentDetectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewDetectionMapper(),
	}
}

func (r *CurrentDetectionRepositoryImpl) Upsert(ctx context.Context, detection *entity.ArchetypeDetection) error {
	m := r.mapper.ToCurrentModel(detection)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(m).Error
}

func (r *CurrentDetectionRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.ArchetypeDetection, error) {
	var m model.CurrentDetection
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CurrentToEntity(&m), nil
}
