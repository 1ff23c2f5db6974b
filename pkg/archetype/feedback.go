package archetype

import "math"

// Feedback is one self-report after an intervention attempt.
type Feedback struct {
	Helpful         bool `json:"helpful"`
	ReturnedToFocus bool `json:"returned_to_focus"`
	EmotionalRating int  `json:"emotional_rating"` // 1..5, recorded but not scored
}

// NextEffectiveness applies one feedback event to an effectiveness score.
// The steps are asymmetric on purpose: a confirmed win moves the score twice
// as far as a miss, biasing rankings toward interventions that ever worked.
// Scores saturate at [0,1]; there is no decay.
func NextEffectiveness(current float64, fb Feedback) float64 {
	switch {
	case fb.Helpful && fb.ReturnedToFocus:
		return math.Min(1.0, current+0.1)
	case !fb.Helpful:
		return math.Max(0.0, current-0.05)
	default:
		return current
	}
}
