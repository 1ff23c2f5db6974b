package archetype

import (
	"math"
	"time"
)

// Archetype is the primary behavioral state label driving intervention choice.
type Archetype string

const (
	Fear      Archetype = "fear"
	LowEnergy Archetype = "low_energy"
	Confusion Archetype = "confusion"
	Chronic   Archetype = "chronic"
)

// Valid reports whether a is one of the four base archetypes.
func (a Archetype) Valid() bool {
	switch a {
	case Fear, LowEnergy, Confusion, Chronic:
		return true
	}
	return false
}

// Detection is the immutable result of one classification call.
type Detection struct {
	Primary             Archetype        `json:"primary"`
	Secondary           *Archetype       `json:"secondary,omitempty"`
	ConfidencePrimary   float64          `json:"confidence_primary"`
	ConfidenceSecondary float64          `json:"confidence_secondary"`
	Signals             DetectionSignals `json:"signals"`
	DetectedAt          time.Time        `json:"detected_at"`
	Message             string           `json:"message"`
	Emoji               string           `json:"emoji"`
}

// Detect classifies a signal vector into a primary archetype and an optional
// secondary one. The cascade is an ordered list of overwriting rules: every
// rule whose predicate holds replaces the outcome written by earlier rules.
// The three hybrid rules at the end are deliberately NOT mutually exclusive;
// the last one that matches wins. Reordering them changes behavior.
//
// Detect never fails. Missing signals are defaulted, so there is always a
// deterministic path to an answer.
func Detect(signals DetectionSignals) Detection {
	s := signals.resolve()

	// Baseline.
	primary := Fear
	var secondary *Archetype
	confPrimary := 0.5
	confSecondary := 0.0

	set := func(p Archetype, conf float64) {
		primary = p
		secondary = nil
		confPrimary = conf
		confSecondary = 0.0
	}
	setHybrid := func(p, sec Archetype, confP, confS float64) {
		primary = p
		secondary = &sec
		confPrimary = confP
		confSecondary = confS
	}

	if s.AnxietyLevel >= 7 || s.Feeling == FeelingAnxious || s.RecentFailures {
		set(Fear, math.Min(0.95, 0.6+float64(s.AnxietyLevel)/10*0.35))
	}
	if s.EnergyLevel <= 3 || s.Feeling == FeelingTired {
		// Floored: feeling tired with energy above 9 would push the raw
		// formula below zero.
		set(LowEnergy, math.Max(0, 0.9-float64(s.EnergyLevel)/10))
	}
	if s.lowClarity() || s.Feeling == FeelingParalyzed {
		conf := 0.75
		if s.Clarity == ClarityOverwhelmed {
			conf = 0.9
		}
		set(Confusion, conf)
	}
	if s.History == HistoryAlways || s.History == HistoryHabit {
		set(Chronic, 0.8)
	}

	// Hybrid overrides, evaluated last. Sequential ifs on purpose.
	if s.AnxietyLevel >= 7 && s.EnergyLevel <= 3 {
		setHybrid(Fear, LowEnergy, 0.75, 0.7)
	}
	if s.AnxietyLevel >= 7 && s.lowClarity() {
		setHybrid(Fear, Confusion, 0.8, 0.75)
	}
	if s.lowClarity() && s.EnergyLevel <= 3 {
		setHybrid(Confusion, LowEnergy, 0.85, 0.7)
	}

	display := displayFor(primary)

	return Detection{
		Primary:             primary,
		Secondary:           secondary,
		ConfidencePrimary:   confPrimary,
		ConfidenceSecondary: confSecondary,
		Signals:             signals,
		DetectedAt:          time.Now(),
		Message:             display.Message,
		Emoji:               display.Emoji,
	}
}
