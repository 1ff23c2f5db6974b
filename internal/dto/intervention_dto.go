package dto

import "mindshift-be/pkg/archetype"

type InterventionOptionResponse struct {
	Id            string             `json:"id"`
	Label         string             `json:"label"`
	Description   string             `json:"description"`
	Duration      int                `json:"duration"`
	Embodied      bool               `json:"embodied"`
	Priority      archetype.Priority `json:"priority"`
	Emoji         string             `json:"emoji"`
	Effectiveness float64            `json:"effectiveness"`
}

type RecordFeedbackRequest struct {
	InterventionId  string `json:"intervention_id" validate:"required"`
	Helpful         bool   `json:"helpful"`
	ReturnedToFocus bool   `json:"returned_to_focus"`
	EmotionalRating int    `json:"emotional_rating" validate:"omitempty,min=1,max=5"`
}
