package bank

import (
	_ "embed"
	"math/rand/v2"
)

//go:embed questions.json
var defaultBankJSON []byte

// Bank holds the loaded question pool and serves random selections.
type Bank struct {
	questions    []Question
	byID         map[int]Question
	byDifficulty map[Difficulty][]Question
	rng          *rand.Rand
}

// New builds a Bank over questions. A nil rng gets a randomly seeded
// source; tests inject a fixed seed for reproducible draws.
func New(questions []Question, rng *rand.Rand) *Bank {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	b := &Bank{
		questions:    questions,
		byID:         make(map[int]Question, len(questions)),
		byDifficulty: make(map[Difficulty][]Question),
		rng:          rng,
	}
	for _, q := range questions {
		b.byID[q.ID] = q
		b.byDifficulty[q.Difficulty] = append(b.byDifficulty[q.Difficulty], q)
	}
	return b
}

// Default returns a Bank over the embedded first aid question set.
func Default(rng *rand.Rand) (*Bank, error) {
	questions, err := Parse(defaultBankJSON, "embedded question bank")
	if err != nil {
		return nil, err
	}
	return New(questions, rng), nil
}

// Select draws up to count random questions of the given difficulty,
// skipping ids present in exclude. DifficultyAny draws from the whole
// pool. When fewer questions match than requested, all matches are
// returned; Select never fails.
func (b *Bank) Select(count int, difficulty Difficulty, exclude map[int]bool) []Question {
	if count <= 0 {
		return nil
	}

	pool := b.questions
	if difficulty != DifficultyAny {
		pool = b.byDifficulty[difficulty]
	}

	matches := make([]Question, 0, len(pool))
	for _, q := range pool {
		if exclude[q.ID] {
			continue
		}
		matches = append(matches, q)
	}

	b.rng.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})

	if count >= len(matches) {
		return matches
	}
	return matches[:count]
}

// ByID returns the question with the given id.
func (b *Bank) ByID(id int) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Len returns the total number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// CountByDifficulty returns how many questions carry the given grade.
// DifficultyAny counts the whole pool.
func (b *Bank) CountByDifficulty(d Difficulty) int {
	if d == DifficultyAny {
		return len(b.questions)
	}
	return len(b.byDifficulty[d])
}
