package mapper

import (
	"mindshift-be/internal/entity"
	"mindshift-be/internal/model"
	"mindshift-be/pkg/archetype"
)

type EffectivenessMapper struct{}

func NewEffectivenessMapper() *EffectivenessMapper {
	return &EffectivenessMapper{}
}

func (m *EffectivenessMapper) ToEntity(e *model.InterventionEffectiveness) *entity.InterventionEffectiveness {
	if e == nil {
		return nil
	}
	return &entity.InterventionEffectiveness{
		UserId:         e.UserId,
		InterventionId: e.InterventionId,
		Score:          e.Score,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EffectivenessMapper) ToModel(e *entity.InterventionEffectiveness) *model.InterventionEffectiveness {
	if e == nil {
		return nil
	}
	return &model.InterventionEffectiveness{
		UserId:         e.UserId,
		InterventionId: e.InterventionId,
		Score:          e.Score,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EffectivenessMapper) ToEntities(rows []*model.InterventionEffectiveness) []*entity.InterventionEffectiveness {
	entities := make([]*entity.InterventionEffectiveness, len(rows))
	for i, e := range rows {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

type StatMapper struct{}

func NewStatMapper() *StatMapper {
	return &StatMapper{}
}

func (m *StatMapper) ToEntity(s *model.ArchetypeStat) *entity.ArchetypeStat {
	if s == nil {
		return nil
	}
	return &entity.ArchetypeStat{
		UserId:         s.UserId,
		Archetype:      archetype.Archetype(s.Archetype),
		Count:          s.Count,
		LastDetectedAt: s.LastDetectedAt,
	}
}

func (m *StatMapper) ToModel(s *entity.ArchetypeStat) *model.ArchetypeStat {
	if s == nil {
		return nil
	}
	return &model.ArchetypeStat{
		UserId:         s.UserId,
		Archetype:      string(s.Archetype),
		Count:          s.Count,
		LastDetectedAt: s.LastDetectedAt,
	}
}

func (m *StatMapper) ToEntities(rows []*model.ArchetypeStat) []*entity.ArchetypeStat {
	entities := make([]*entity.ArchetypeStat, len(rows))
	for i, s := range rows {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
