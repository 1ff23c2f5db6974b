package archetype

type display struct {
	Message string
	Emoji   string
}

// displayTable maps the final primary archetype to the coaching line shown in
// the app. Display only; nothing downstream branches on these.
var displayTable = map[Archetype]display{
	Fear: {
		Message: "Your mind is protecting you from a task that feels risky. Let's shrink the risk.",
		Emoji:   "🛡️",
	},
	LowEnergy: {
		Message: "Your battery is low. A small physical reset beats willpower right now.",
		Emoji:   "🔋",
	},
	Confusion: {
		Message: "The task is foggy, not hard. Let's find the first concrete step.",
		Emoji:   "🧭",
	},
	Chronic: {
		Message: "This is a pattern, not a mood. A firm commitment device works best for you.",
		Emoji:   "⚓",
	},
}

func displayFor(primary Archetype) display {
	if d, ok := displayTable[primary]; ok {
		return d
	}
	return displayTable[Fear]
}
