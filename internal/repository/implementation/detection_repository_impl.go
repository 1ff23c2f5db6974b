package implementation

import (
	"context"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/mapper"
	"mindshift-be/internal/model"
	"mindshift-be/internal/repository/contract"
	"mindshift-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DetectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DetectionMapper
}

func NewDetectionRepository(db *gorm.DB) contract.DetectionRepository {
	return &DetectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewDetectionMapper(),
	}
}

func (r *DetectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DetectionRepositoryImpl) Create(ctx context.Context, detection *entity.ArchetypeDetection) error {
	m := r.mapper.ToModel(detection)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*detection = *r.mapper.ToEntity(m)
	return nil
}

func (r *DetectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArchetypeDetection, error) {
	var models []*model.ArchetypeDetection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DetectionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ArchetypeDetection{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
