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

type EffectivenessRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EffectivenessMapper
}

func NewEffectivenessRepository(db *gorm.DB) contract.EffectivenessRepository {
	return &EffectivenessRepositoryImpl{
		db:     db,
		mapper: mapper.NewEffectivenessMapper(),
	}
}

func (r *EffectivenessRepositoryImpl) FindOne(ctx context.Context, userId uuid.UUID, interventionId string) (*entity.InterventionEffectiveness, error) {
	var m model.InterventionEffectiveness
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND intervention_id = ?", userId, interventionId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EffectivenessRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.InterventionEffectiveness, error) {
	var models []*model.InterventionEffectiveness
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EffectivenessRepositoryImpl) Upsert(ctx context.Context, effectiveness *entity.InterventionEffectiveness) error {
	m := r.mapper.ToModel(effectiveness)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "intervention_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(m).Error
}
