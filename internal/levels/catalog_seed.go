package levels

import "aidquiz/internal/bank"

// seedLevels defines the built-in progression ladder. Thresholds are
// lifetime score, so replaying early levels keeps counting toward the
// later unlocks.
var seedLevels = []Level{
	{
		ID:              1,
		Name:            "Basic First Aid",
		Icon:            "❤️",
		QuestionCount:   3,
		Difficulty:      bank.DifficultyEasy,
		UnlockThreshold: 0,
	},
	{
		ID:              2,
		Name:            "Emergency Response",
		Icon:            "⭐",
		QuestionCount:   4,
		Difficulty:      bank.DifficultyMedium,
		UnlockThreshold: 20,
	},
	{
		ID:              3,
		Name:            "Advanced Techniques",
		Icon:            "➕",
		QuestionCount:   3,
		Difficulty:      bank.DifficultyHard,
		UnlockThreshold: 50,
	},
	{
		ID:              4,
		Name:            "CPR Mastery",
		Icon:            "💓",
		QuestionCount:   5,
		Difficulty:      bank.DifficultyHard,
		UnlockThreshold: 80,
	},
	{
		ID:              5,
		Name:            "Expert Level",
		Icon:            "🏆",
		QuestionCount:   5,
		Difficulty:      bank.DifficultyHard,
		UnlockThreshold: 120,
	},
}
