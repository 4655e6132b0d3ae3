package session

// Result summarizes a finished session for progress folding, history,
// and the results screen.
type Result struct {
	SessionID         string
	LevelID           int
	Outcome           Status
	FinalScore        int
	QuestionsAnswered int
	CorrectCount      int
	LivesLeft         int
	Accuracy          float64 // CorrectCount / QuestionsAnswered, 0 when nothing answered
}

// Grade returns the performance grade for the session's accuracy.
func (r *Result) Grade() Grade {
	return GradeFor(r.Accuracy)
}

// Grade buckets session accuracy for end-of-level feedback.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradePractice  Grade = "practice"
)

// GradeFor returns the grade for an accuracy in [0, 1].
func GradeFor(accuracy float64) Grade {
	switch {
	case accuracy >= 0.80:
		return GradeExcellent
	case accuracy >= 0.60:
		return GradeGood
	default:
		return GradePractice
	}
}

// Message returns the player-facing line for the grade.
func (g Grade) Message() string {
	switch g {
	case GradeExcellent:
		return "Excellent! You're a first aid expert!"
	case GradeGood:
		return "Good job! Keep practicing!"
	case GradePractice:
		return "Keep studying and try again!"
	default:
		return string(g)
	}
}

// Icon returns the display icon for the grade.
func (g Grade) Icon() string {
	switch g {
	case GradeExcellent:
		return "🌟"
	case GradeGood:
		return "👍"
	case GradePractice:
		return "📚"
	default:
		return "•"
	}
}
