package mapper

import (
	"encoding/json"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/model"
	"mindshift-be/pkg/archetype"

	"gorm.io/datatypes"
)

type DetectionMapper struct{}

func NewDetectionMapper() *DetectionMapper {
	return &DetectionMapper{}
}

func (m *DetectionMapper) ToEntity(d *model.ArchetypeDetection) *entity.ArchetypeDetection {
	if d == nil {
		return nil
	}

	var secondary *archetype.Archetype
	if d.SecondaryArchetype != nil {
		s := archetype.Archetype(*d.SecondaryArchetype)
		secondary = &s
	}

	var signals archetype.DetectionSignals
	// Signals were serialized by us; a decode failure just leaves them empty.
	_ = json.Unmarshal(d.Signals, &signals)

	return &entity.ArchetypeDetection{
		Id:                  d.Id,
		UserId:              d.UserId,
		Primary:             archetype.Archetype(d.PrimaryArchetype),
		Secondary:           secondary,
		ConfidencePrimary:   d.ConfidencePrimary,
		ConfidenceSecondary: d.ConfidenceSecondary,
		Signals:             signals,
		Message:             d.Message,
		Emoji:               d.Emoji,
		DetectedAt:          d.DetectedAt,
		CreatedAt:           d.CreatedAt,
	}
}

func (m *DetectionMapper) ToModel(d *entity.ArchetypeDetection) *model.ArchetypeDetection {
	if d == nil {
		return nil
	}

	var secondary *string
	if d.Secondary != nil {
		s := string(*d.Secondary)
		secondary = &s
	}

	signalsJSON, _ := json.Marshal(d.Signals)

	return &model.ArchetypeDetection{
		Id:                  d.Id,
		UserId:              d.UserId,
		PrimaryArchetype:    string(d.Primary),
		SecondaryArchetype:  secondary,
		ConfidencePrimary:   d.ConfidencePrimary,
		ConfidenceSecondary: d.ConfidenceSecondary,
		Signals:             datatypes.JSON(signalsJSON),
		Message:             d.Message,
		Emoji:               d.Emoji,
		DetectedAt:          d.DetectedAt,
		CreatedAt:           d.CreatedAt,
	}
}

func (m *DetectionMapper) ToEntities(detections []*model.ArchetypeDetection) []*entity.ArchetypeDetection {
	entities := make([]*entity.ArchetypeDetection, len(detections))
	for i, d := range detections {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

// ToCurrentModel projects a detection into the single-row-per-user current
// table.
func (m *DetectionMapper) ToCurrentModel(d *entity.ArchetypeDetection) *model.CurrentDetection {
	if d == nil {
		return nil
	}

	var secondary *string
	if d.Secondary != nil {
		s := string(*d.Secondary)
		secondary = &s
	}

	signalsJSON, _ := json.Marshal(d.Signals)

	return &model.CurrentDetection{
		UserId:              d.UserId,
		DetectionId:         d.Id,
		PrimaryArchetype:    string(d.Primary),
		SecondaryArchetype:  secondary,
		ConfidencePrimary:   d.ConfidencePrimary,
		ConfidenceSecondary: d.ConfidenceSecondary,
		Signals:             datatypes.JSON(signalsJSON),
		Message:             d.Message,
		Emoji:               d.Emoji,
		DetectedAt:          d.DetectedAt,
	}
}

func (m *DetectionMapper) CurrentToEntity(d *model.CurrentDetection) *entity.ArchetypeDetection {
	if d == nil {
		return nil
	}

	var secondary *archetype.Archetype
	if d.SecondaryArchetype != nil {
		s := archetype.Archetype(*d.SecondaryArchetype)
		secondary = &s
	}

	var signals archetype.DetectionSignals
	_ = json.Unmarshal(d.Signals, &signals)

	return &entity.ArchetypeDetection{
		Id:                  d.DetectionId,
		UserId:              d.UserId,
		Primary:             archetype.Archetype(d.PrimaryArchetype),
		Secondary:           secondary,
		ConfidencePrimary:   d.ConfidencePrimary,
		ConfidenceSecondary: d.ConfidenceSecondary,
		Signals:             signals,
		Message:             d.Message,
		Emoji:               d.Emoji,
		DetectedAt:          d.DetectedAt,
	}
}
