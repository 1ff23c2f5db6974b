package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func feelingPtr(v Feeling) *Feeling { return &v }

func clarityPtr(v Clarity) *Clarity { return &v }

func historyPtr(v History) *History { return &v }

func TestDetectDefaultsToBaselineFear(t *testing.T) {
	d := Detect(DetectionSignals{})

	assert.Equal(t, Fear, d.Primary)
	assert.Nil(t, d.Secondary)
	assert.Equal(t, 0.5, d.ConfidencePrimary)
	assert.Equal(t, 0.0, d.ConfidenceSecondary)
	assert.NotEmpty(t, d.Message)
	assert.NotEmpty(t, d.Emoji)
	assert.False(t, d.DetectedAt.IsZero())
}

func TestDetectHighAnxietyIsPureFear(t *testing.T) {
	// Property from the cascade: anxiety in [7,10] with every other signal in
	// its non-triggering range must yield Fear with no secondary.
	for anxiety := 7; anxiety <= 10; anxiety++ {
		for energy := 4; energy <= 10; energy++ {
			for _, clarity := range []Clarity{ClarityClear, ClarityUnclear} {
				for _, history := range []History{HistoryNever, HistorySometimes} {
					d := Detect(DetectionSignals{
						AnxietyLevel:           intPtr(anxiety),
						EnergyLevel:            intPtr(energy),
						Clarity:                clarityPtr(clarity),
						ProcrastinationHistory: historyPtr(history),
						RecentFailures:         boolPtr(false),
					})
					assert.Equal(t, Fear, d.Primary, "anxiety=%d energy=%d clarity=%s", anxiety, energy, clarity)
					assert.Nil(t, d.Secondary)
					expected := 0.6 + float64(anxiety)/10*0.35
					if expected > 0.95 {
						expected = 0.95
					}
					assert.InDelta(t, expected, d.ConfidencePrimary, 1e-9)
				}
			}
		}
	}
}

func TestDetectLowEnergy(t *testing.T) {
	for energy := 1; energy <= 3; energy++ {
		d := Detect(DetectionSignals{EnergyLevel: intPtr(energy)})
		assert.Equal(t, LowEnergy, d.Primary, "energy=%d", energy)
		assert.Nil(t, d.Secondary)
		assert.InDelta(t, 0.9-float64(energy)/10, d.ConfidencePrimary, 1e-9)
	}

	// Feeling tired triggers the same rule even at neutral energy.
	d := Detect(DetectionSignals{Feeling: feelingPtr(FeelingTired)})
	assert.Equal(t, LowEnergy, d.Primary)
	assert.InDelta(t, 0.4, d.ConfidencePrimary, 1e-9)
}

func TestDetectTiredAtHighEnergyFloorsConfidence(t *testing.T) {
	// Feeling tired fires the low-energy rule regardless of the reported
	// energy level; at energy 10 the raw formula dips below zero and must
	// be floored.
	d := Detect(DetectionSignals{
		Feeling:     feelingPtr(FeelingTired),
		EnergyLevel: intPtr(10),
	})

	assert.Equal(t, LowEnergy, d.Primary)
	assert.InDelta(t, 0.0, d.ConfidencePrimary, 1e-9)

	d = Detect(DetectionSignals{
		Feeling:     feelingPtr(FeelingTired),
		EnergyLevel: intPtr(9),
	})
	assert.InDelta(t, 0.0, d.ConfidencePrimary, 1e-9)
	assert.GreaterOrEqual(t, d.ConfidencePrimary, 0.0)
}

func TestDetectConfusionConfidenceDependsOnClarity(t *testing.T) {
	d := Detect(DetectionSignals{Clarity: clarityPtr(ClarityOverwhelmed)})
	assert.Equal(t, Confusion, d.Primary)
	assert.Equal(t, 0.9, d.ConfidencePrimary)

	d = Detect(DetectionSignals{Clarity: clarityPtr(ClarityConfused)})
	assert.Equal(t, Confusion, d.Primary)
	assert.Equal(t, 0.75, d.ConfidencePrimary)

	d = Detect(DetectionSignals{Feeling: feelingPtr(FeelingParalyzed)})
	assert.Equal(t, Confusion, d.Primary)
	assert.Equal(t, 0.75, d.ConfidencePrimary)
}

func TestDetectChronicHistory(t *testing.T) {
	for _, history := range []History{HistoryAlways, HistoryHabit} {
		d := Detect(DetectionSignals{ProcrastinationHistory: historyPtr(history)})
		assert.Equal(t, Chronic, d.Primary, "history=%s", history)
		assert.Nil(t, d.Secondary)
		assert.Equal(t, 0.8, d.ConfidencePrimary)
	}
}

func TestDetectChronicOverridesSingleArchetypeRules(t *testing.T) {
	// Habit is evaluated after the fear rule, so it wins even with anxiety 10
	// as long as no hybrid fires.
	d := Detect(DetectionSignals{
		AnxietyLevel:           intPtr(10),
		ProcrastinationHistory: historyPtr(HistoryHabit),
	})
	assert.Equal(t, Chronic, d.Primary)
	assert.Nil(t, d.Secondary)
	assert.Equal(t, 0.8, d.ConfidencePrimary)
}

func TestDetectHybridFearLowEnergy(t *testing.T) {
	d := Detect(DetectionSignals{
		AnxietyLevel: intPtr(8),
		EnergyLevel:  intPtr(2),
	})
	assert.Equal(t, Fear, d.Primary)
	if assert.NotNil(t, d.Secondary) {
		assert.Equal(t, LowEnergy, *d.Secondary)
	}
	assert.Equal(t, 0.75, d.ConfidencePrimary)
	assert.Equal(t, 0.7, d.ConfidenceSecondary)
}

func TestDetectHybridFearConfusion(t *testing.T) {
	d := Detect(DetectionSignals{
		AnxietyLevel: intPtr(9),
		Clarity:      clarityPtr(ClarityConfused),
	})
	assert.Equal(t, Fear, d.Primary)
	if assert.NotNil(t, d.Secondary) {
		assert.Equal(t, Confusion, *d.Secondary)
	}
	assert.Equal(t, 0.8, d.ConfidencePrimary)
	assert.Equal(t, 0.75, d.ConfidenceSecondary)
}

func TestDetectLastHybridWinsWhenAllThreeFire(t *testing.T) {
	// Anxiety high, energy low, clarity overwhelmed: all three hybrid rules
	// match, and the cascade keeps the textually last one.
	d := Detect(DetectionSignals{
		AnxietyLevel: intPtr(8),
		EnergyLevel:  intPtr(2),
		Clarity:      clarityPtr(ClarityOverwhelmed),
	})
	assert.Equal(t, Confusion, d.Primary)
	if assert.NotNil(t, d.Secondary) {
		assert.Equal(t, LowEnergy, *d.Secondary)
	}
	assert.Equal(t, 0.85, d.ConfidencePrimary)
	assert.Equal(t, 0.7, d.ConfidenceSecondary)
}

func TestDetectInvariants(t *testing.T) {
	// Sweep a broad grid and check the structural invariants hold everywhere.
	feelings := []Feeling{FeelingEnergetic, FeelingNormal, FeelingTired, FeelingAnxious, FeelingParalyzed}
	clarities := []Clarity{ClarityClear, ClarityUnclear, ClarityConfused, ClarityOverwhelmed}
	histories := []History{HistoryNever, HistorySometimes, HistoryOften, HistoryAlways, HistoryHabit}

	for _, feeling := range feelings {
		for _, clarity := range clarities {
			for _, history := range histories {
				for anxiety := 1; anxiety <= 10; anxiety += 3 {
					for energy := 1; energy <= 10; energy += 3 {
						d := Detect(DetectionSignals{
							Feeling:                feelingPtr(feeling),
							Clarity:                clarityPtr(clarity),
							ProcrastinationHistory: historyPtr(history),
							AnxietyLevel:           intPtr(anxiety),
							EnergyLevel:            intPtr(energy),
						})
						assert.True(t, d.Primary.Valid())
						assert.GreaterOrEqual(t, d.ConfidencePrimary, d.ConfidenceSecondary)
						if d.Secondary != nil {
							assert.Greater(t, d.ConfidenceSecondary, 0.0)
							assert.NotEqual(t, d.Primary, *d.Secondary)
						}
					}
				}
			}
		}
	}
}

func TestDetectIsPureModuloTimestamp(t *testing.T) {
	signals := DetectionSignals{
		AnxietyLevel: intPtr(8),
		EnergyLevel:  intPtr(2),
	}
	a := Detect(signals)
	b := Detect(signals)

	assert.Equal(t, a.Primary, b.Primary)
	assert.Equal(t, a.Secondary, b.Secondary)
	assert.Equal(t, a.ConfidencePrimary, b.ConfidencePrimary)
	assert.Equal(t, a.ConfidenceSecondary, b.ConfidenceSecondary)
	assert.Equal(t, a.Message, b.Message)
}
