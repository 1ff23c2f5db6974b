package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsForAllValidKeys(t *testing.T) {
	keys := CatalogKeys()
	assert.Len(t, keys, 7)

	for _, key := range keys {
		options := OptionsFor(key)
		assert.NotEmpty(t, options, "key=%s", key)
		assert.LessOrEqual(t, len(options), 4, "key=%s", key)
		for _, opt := range options {
			assert.NotEmpty(t, opt.ID)
			assert.NotEmpty(t, opt.Label)
			assert.Greater(t, opt.Duration, 0)
		}
	}
}

func TestOptionsForUnknownKeyFallsBackToFear(t *testing.T) {
	fallback := OptionsFor("perfectionism")
	fear := OptionsFor(string(Fear))
	assert.Equal(t, fear, fallback)

	assert.NotEmpty(t, OptionsFor(""))
}

func TestOptionsForReturnsACopy(t *testing.T) {
	a := OptionsFor(string(Fear))
	a[0].Label = "mutated"
	b := OptionsFor(string(Fear))
	assert.NotEqual(t, "mutated", b[0].Label)
}

func TestKeyFormat(t *testing.T) {
	assert.Equal(t, "fear", Key(Fear, nil))
	sec := LowEnergy
	assert.Equal(t, "fear+low_energy", Key(Fear, &sec))
}

func TestRankSortsByEffectivenessDescending(t *testing.T) {
	options := OptionsFor(string(Fear))
	scores := map[string]float64{
		"fear_box_breathing":  0.9,
		"fear_two_minute_start": 0.2,
	}

	ranked := Rank(options, scores)

	assert.Equal(t, "fear_box_breathing", ranked[0].ID)
	assert.Equal(t, 0.9, ranked[0].Effectiveness)
	assert.Equal(t, "fear_two_minute_start", ranked[len(ranked)-1].ID)
}

func TestRankUnscoredOptionsKeepAuthoredOrder(t *testing.T) {
	options := OptionsFor(string(Confusion))
	ranked := Rank(options, nil)

	// All default to 0.5; stable sort must preserve catalog order.
	authored := OptionsFor(string(Confusion))
	for i := range ranked {
		assert.Equal(t, authored[i].ID, ranked[i].ID)
		assert.Equal(t, DefaultEffectiveness, ranked[i].Effectiveness)
	}
}

func TestNextEffectivenessSteps(t *testing.T) {
	score := 0.5
	for i := 0; i < 5; i++ {
		score = NextEffectiveness(score, Feedback{Helpful: true, ReturnedToFocus: true})
	}
	assert.InDelta(t, 1.0, score, 1e-9)

	// Saturates at 1.0.
	score = NextEffectiveness(score, Feedback{Helpful: true, ReturnedToFocus: true})
	assert.Equal(t, 1.0, score)

	score = 0.5
	for i := 0; i < 10; i++ {
		score = NextEffectiveness(score, Feedback{Helpful: false})
	}
	assert.InDelta(t, 0.0, score, 1e-9)

	// Clamped, never negative.
	score = NextEffectiveness(score, Feedback{Helpful: false})
	assert.Equal(t, 0.0, score)

	// Helpful without returning to focus is a no-op.
	assert.Equal(t, 0.42, NextEffectiveness(0.42, Feedback{Helpful: true}))
}
