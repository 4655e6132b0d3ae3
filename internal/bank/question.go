package bank

// NumOptions is the number of answer options every question carries.
const NumOptions = 4

// Difficulty grades a question for level filtering.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// DifficultyAny disables difficulty filtering when selecting questions.
	DifficultyAny Difficulty = ""
)

// AllDifficulties returns the known difficulty grades in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty grade.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyAny:
		return "Mixed"
	default:
		return string(d)
	}
}

// Question is a single multiple-choice item from the question bank.
// Questions are immutable once loaded.
type Question struct {
	ID           int        `json:"id"`
	Prompt       string     `json:"question"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correct_answer"`
	Explanation  string     `json:"explanation"`
	Category     string     `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
}

// IsCorrect reports whether choice picks the correct option. Choices
// outside the option range never match.
func (q Question) IsCorrect(choice int) bool {
	return choice >= 0 && choice < len(q.Options) && choice == q.CorrectIndex
}
