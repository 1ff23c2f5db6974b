package archetype

import "sort"

// Priority buckets interventions by urgency of the underlying state.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Option is one curated micro-intervention. The catalog entries are
// immutable; Effectiveness is filled in per user at read time.
type Option struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Description   string   `json:"description"`
	Duration      int      `json:"duration"` // seconds
	Embodied      bool     `json:"embodied"` // requires physical action
	Priority      Priority `json:"priority"`
	Emoji         string   `json:"emoji"`
	Effectiveness float64  `json:"effectiveness"`
}

// DefaultEffectiveness is the score assumed for an intervention the user has
// never given feedback on.
const DefaultEffectiveness = 0.5

// Key builds the catalog key for a detection result. Hybrids use a
// "primary+secondary" compound key; base archetypes use their own name.
func Key(primary Archetype, secondary *Archetype) string {
	if secondary != nil {
		return string(primary) + "+" + string(*secondary)
	}
	return string(primary)
}

// catalog maps the 4 base and 3 hybrid keys to their authored option lists.
// Authored order is the tie-break order after ranking.
var catalog = map[string][]Option{
	string(Fear): {
		{ID: "fear_two_minute_start", Label: "2-Minute Ugly Start", Description: "Do the worst possible version of the task for exactly two minutes. Quality is forbidden.", Duration: 120, Embodied: false, Priority: PriorityCritical, Emoji: "⏱️"},
		{ID: "fear_worst_case_note", Label: "Worst-Case Note", Description: "Write the actual worst outcome in one sentence, then rate how survivable it is.", Duration: 180, Embodied: false, Priority: PriorityHigh, Emoji: "📝"},
		{ID: "fear_box_breathing", Label: "Box Breathing", Description: "Four counts in, hold, out, hold. Four rounds to take the edge off before starting.", Duration: 90, Embodied: true, Priority: PriorityMedium, Emoji: "🌬️"},
	},
	string(LowEnergy): {
		{ID: "energy_power_walk", Label: "90-Second Power Walk", Description: "Stand up and walk briskly, ideally to daylight. Return before you decide anything.", Duration: 90, Embodied: true, Priority: PriorityCritical, Emoji: "🚶"},
		{ID: "energy_hydrate_stretch", Label: "Water + Stretch", Description: "Drink a full glass of water and do three slow shoulder rolls.", Duration: 120, Embodied: true, Priority: PriorityHigh, Emoji: "💧"},
		{ID: "energy_smallest_piece", Label: "Smallest Piece First", Description: "Pick the single least demanding sub-task and do only that.", Duration: 300, Embodied: false, Priority: PriorityMedium, Emoji: "🍰"},
	},
	string(Confusion): {
		{ID: "confusion_brain_dump", Label: "Brain Dump", Description: "Write everything in your head about the task for three minutes. No structure allowed.", Duration: 180, Embodied: false, Priority: PriorityCritical, Emoji: "🧠"},
		{ID: "confusion_next_action", Label: "Name the Next Action", Description: "Finish the sentence: the very next physical action is ___.", Duration: 120, Embodied: false, Priority: PriorityHigh, Emoji: "🎯"},
		{ID: "confusion_three_steps", Label: "Three-Step Map", Description: "Split the task into exactly three steps. Coarse is fine; pick step one.", Duration: 240, Embodied: false, Priority: PriorityMedium, Emoji: "🗺️"},
	},
	string(Chronic): {
		{ID: "chronic_written_contract", Label: "Written Contract", Description: "Write and sign a one-line contract: task, time box, and a named consequence.", Duration: 180, Embodied: false, Priority: PriorityCritical, Emoji: "✍️"},
		{ID: "chronic_stake_message", Label: "Stake a Promise", Description: "Message someone what you will finish in the next 30 minutes.", Duration: 120, Embodied: false, Priority: PriorityHigh, Emoji: "📣"},
		{ID: "chronic_env_reset", Label: "Environment Reset", Description: "Phone in another room, one tab open, timer visible.", Duration: 180, Embodied: true, Priority: PriorityMedium, Emoji: "🧹"},
	},
	Key(Fear, ptr(LowEnergy)): {
		{ID: "hybrid_fl_gentle_start", Label: "Gentle Ugly Start", Description: "Sit with the task open and do one trivially small edit. Nothing else is required.", Duration: 180, Embodied: false, Priority: PriorityCritical, Emoji: "🌱"},
		{ID: "hybrid_fl_breath_walk", Label: "Breathe, Then Walk", Description: "Four slow breaths, then a short walk. Decide nothing until you're back.", Duration: 240, Embodied: true, Priority: PriorityHigh, Emoji: "🍃"},
	},
	Key(Fear, ptr(Confusion)): {
		{ID: "hybrid_fc_question_dump", Label: "Question Dump", Description: "List every question you'd need answered to feel safe starting. Pick the easiest one.", Duration: 240, Embodied: false, Priority: PriorityCritical, Emoji: "❓"},
		{ID: "hybrid_fc_tiny_scope", Label: "Shrink the Scope", Description: "Redefine the task as its first 10%. That 10% is now the whole task.", Duration: 180, Embodied: false, Priority: PriorityHigh, Emoji: "🔍"},
	},
	Key(Confusion, ptr(LowEnergy)): {
		{ID: "hybrid_cl_voice_note", Label: "Voice-Note the Mess", Description: "Record yourself talking through the task for two minutes. Listening is optional.", Duration: 120, Embodied: false, Priority: PriorityCritical, Emoji: "🎙️"},
		{ID: "hybrid_cl_move_then_map", Label: "Move, Then Map", Description: "One minute of movement, then write the three coarsest steps you can.", Duration: 240, Embodied: true, Priority: PriorityHigh, Emoji: "🧩"},
	},
}

func ptr(a Archetype) *Archetype { return &a }

// OptionsFor returns a copy of the authored option list for the given catalog
// key. Unknown keys fall back to the Fear list; callers always get a
// non-empty slice.
func OptionsFor(key string) []Option {
	list, ok := catalog[key]
	if !ok {
		list = catalog[string(Fear)]
	}
	out := make([]Option, len(list))
	copy(out, list)
	return out
}

// Rank attaches per-user effectiveness scores to the options and orders them
// best-first. The sort is stable so unscored options keep authored order.
func Rank(options []Option, scores map[string]float64) []Option {
	for i := range options {
		if score, ok := scores[options[i].ID]; ok {
			options[i].Effectiveness = score
		} else {
			options[i].Effectiveness = DefaultEffectiveness
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Effectiveness > options[j].Effectiveness
	})
	return options
}

// CatalogKeys returns every valid catalog key.
func CatalogKeys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
