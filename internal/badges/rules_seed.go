package badges

// seedRules defines the built-in award ladder. Score rules track
// lifetime points; level rules track how far the player has pushed
// the level ladder (reaching level N means level N-1 was won).
var seedRules = []Rule{
	{
		Badge:       "first-response",
		Name:        "First Response",
		Icon:        "🩹",
		Description: "Score your first 10 points",
		MinScore:    10,
	},
	{
		Badge:       "steady-hands",
		Name:        "Steady Hands",
		Icon:        "🧤",
		Description: "Reach 50 lifetime points",
		MinScore:    50,
	},
	{
		Badge:       "century-saver",
		Name:        "Century Saver",
		Icon:        "💯",
		Description: "Reach 100 lifetime points",
		MinScore:    100,
	},
	{
		Badge:       "triage-expert",
		Name:        "Triage Expert",
		Icon:        "🚨",
		Description: "Reach 250 lifetime points",
		MinScore:    250,
	},
	{
		Badge:       "responder",
		Name:        "Certified Responder",
		Icon:        "⛑️",
		Description: "Clear Basic First Aid",
		MinLevel:    2,
	},
	{
		Badge:       "field-medic",
		Name:        "Field Medic",
		Icon:        "🚑",
		Description: "Clear Advanced Techniques",
		MinLevel:    4,
	},
	{
		Badge:       "cpr-master",
		Name:        "CPR Master",
		Icon:        "💓",
		Description: "Clear CPR Mastery",
		MinLevel:    5,
	},
	{
		Badge:       "quiz-legend",
		Name:        "Quiz Legend",
		Icon:        "🏆",
		Description: "Clear Expert Level",
		MinLevel:    6,
	},
}

// DefaultRules returns the built-in award rules.
func DefaultRules() []Rule {
	rules := make([]Rule, len(seedRules))
	copy(rules, seedRules)
	return rules
}
