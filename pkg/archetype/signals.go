package archetype

// Feeling is the user's self-reported emotional state.
type Feeling string

const (
	FeelingEnergetic Feeling = "energetic"
	FeelingNormal    Feeling = "normal"
	FeelingTired     Feeling = "tired"
	FeelingAnxious   Feeling = "anxious"
	FeelingParalyzed Feeling = "paralyzed"
)

// Clarity is how well the user understands what they should be doing.
type Clarity string

const (
	ClarityClear       Clarity = "clear"
	ClarityUnclear     Clarity = "unclear"
	ClarityConfused    Clarity = "confused"
	ClarityOverwhelmed Clarity = "overwhelmed"
)

// History is the user's self-assessed procrastination track record.
type History string

const (
	HistoryNever     History = "never"
	HistorySometimes History = "sometimes"
	HistoryOften     History = "often"
	HistoryAlways    History = "always"
	HistoryHabit     History = "habit"
)

// DetectionSignals is the input vector for a classification. Every field is
// optional; partial observability is the normal case on mobile clients, so
// missing fields are filled with neutral defaults before the cascade runs.
type DetectionSignals struct {
	Feeling                *Feeling `json:"feeling,omitempty" validate:"omitempty,oneof=energetic normal tired anxious paralyzed"`
	Clarity                *Clarity `json:"clarity,omitempty" validate:"omitempty,oneof=clear unclear confused overwhelmed"`
	EnergyLevel            *int     `json:"energy_level,omitempty" validate:"omitempty,min=1,max=10"`
	AnxietyLevel           *int     `json:"anxiety_level,omitempty" validate:"omitempty,min=1,max=10"`
	RecentFailures         *bool    `json:"recent_failures,omitempty"`
	TaskImportance         *int     `json:"task_importance,omitempty" validate:"omitempty,min=1,max=10"`
	ProcrastinationHistory *History `json:"procrastination_history,omitempty" validate:"omitempty,oneof=never sometimes often always habit"`
}

const neutralLevel = 5

// resolvedSignals is the fully-defaulted view the cascade operates on.
type resolvedSignals struct {
	Feeling        Feeling
	Clarity        Clarity
	EnergyLevel    int
	AnxietyLevel   int
	RecentFailures bool
	TaskImportance int
	History        History
}

func (s DetectionSignals) resolve() resolvedSignals {
	r := resolvedSignals{
		Feeling:        FeelingNormal,
		Clarity:        ClarityClear,
		EnergyLevel:    neutralLevel,
		AnxietyLevel:   neutralLevel,
		TaskImportance: neutralLevel,
		History:        HistorySometimes,
	}
	if s.Feeling != nil {
		r.Feeling = *s.Feeling
	}
	if s.Clarity != nil {
		r.Clarity = *s.Clarity
	}
	if s.EnergyLevel != nil {
		r.EnergyLevel = *s.EnergyLevel
	}
	if s.AnxietyLevel != nil {
		r.AnxietyLevel = *s.AnxietyLevel
	}
	if s.RecentFailures != nil {
		r.RecentFailures = *s.RecentFailures
	}
	if s.TaskImportance != nil {
		r.TaskImportance = *s.TaskImportance
	}
	if s.ProcrastinationHistory != nil {
		r.History = *s.ProcrastinationHistory
	}
	return r
}

func (r resolvedSignals) lowClarity() bool {
	return r.Clarity == ClarityOverwhelmed || r.Clarity == ClarityConfused
}
