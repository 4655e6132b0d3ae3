package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// fileEnvelope mirrors the on-disk question file layout.
type fileEnvelope struct {
	Questions []Question `json:"first_aid_questions"`
}

// Parse decodes and validates a question file. The source string names
// the data origin for error messages. Any invalid question fails the
// whole parse with a *DataError; questions are never silently dropped.
func Parse(data []byte, source string) ([]Question, error) {
	// Parse JSON first.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DataError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := fileSchema()
	if err != nil {
		return nil, &DataError{Source: source, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, &DataError{Source: source, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var envelope fileEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &DataError{Source: source, Err: fmt.Errorf("decode questions: %w", err)}
	}

	if err := validateQuestions(envelope.Questions); err != nil {
		return nil, &DataError{Source: source, Err: err}
	}

	return envelope.Questions, nil
}

// LoadFile reads and parses the question file at path.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataError{Source: path, Err: err}
	}
	return Parse(data, path)
}

// validateQuestions enforces the bank invariants on decoded questions.
// It repeats the shape checks so programmatically built question sets
// get the same guarantees as file loads.
func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return errors.New("no questions")
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		if seen[q.ID] {
			return fmt.Errorf("question %d: duplicate id %d", i, q.ID)
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question id %d: empty prompt", q.ID)
		}
		if len(q.Options) != NumOptions {
			return fmt.Errorf("question id %d: %d options, want %d", q.ID, len(q.Options), NumOptions)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("question id %d: correct_answer %d out of range", q.ID, q.CorrectIndex)
		}
		if !q.Difficulty.Valid() {
			return fmt.Errorf("question id %d: unknown difficulty %q", q.ID, q.Difficulty)
		}
	}

	return nil
}
