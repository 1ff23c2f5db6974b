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

type StatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StatMapper
}

func NewStatRepository(db *gorm.DB) contract.StatRepository {
	return &StatRepositoryImpl{
		db:     db,
		mapper: mapper.NewStatMapper(),
	}
}

func (r *StatRepositoryImpl) FindOne(ctx context.Context, userId uuid.UUID, archetype string) (*entity.ArchetypeStat, error) {
	var m model.ArchetypeStat
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND archetype = ?", userId, archetype).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StatRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ArchetypeStat, error) {
	var models []*model.ArchetypeStat
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("count DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StatRepositoryImpl) Save(ctx context.Context, stat *entity.ArchetypeStat) error {
	m := r.mapper.ToModel(stat)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "archetype"}},
		DoUpdates: clause.AssignmentColumns([]string{"count", "last_detected_at"}),
	}).Create(m).Error
}
