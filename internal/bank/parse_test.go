package bank

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	data := `{
		"first_aid_questions": [
			{
				"id": 1,
				"question": "What should you do first at an emergency scene?",
				"options": ["Check for danger", "Run to the victim", "Start CPR", "Call a friend"],
				"correct_answer": 0,
				"explanation": "Scene safety comes first.",
				"category": "Emergency Basics",
				"difficulty": "easy"
			},
			{
				"id": 2,
				"question": "What is the adult CPR compression rate?",
				"options": ["60-80", "90-100", "100-120", "140-160"],
				"correct_answer": 2,
				"explanation": "",
				"category": "CPR",
				"difficulty": "hard"
			}
		]
	}`

	questions, err := Parse([]byte(data), "test")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}

	q := questions[0]
	if q.ID != 1 {
		t.Errorf("ID = %d, want 1", q.ID)
	}
	if q.Prompt != "What should you do first at an emergency scene?" {
		t.Errorf("Prompt = %q", q.Prompt)
	}
	if q.CorrectIndex != 0 {
		t.Errorf("CorrectIndex = %d, want 0", q.CorrectIndex)
	}
	if q.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %q, want %q", q.Difficulty, DifficultyEasy)
	}
	if questions[1].Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %q, want %q", questions[1].Difficulty, DifficultyHard)
	}
}

func TestParse_RejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string // substring of the error message
	}{
		{
			"malformed json",
			`{"first_aid_questions": [`,
			"invalid JSON",
		},
		{
			"missing envelope key",
			`{"questions": []}`,
			"schema validation",
		},
		{
			"empty question list",
			`{"first_aid_questions": []}`,
			"schema validation",
		},
		{
			"three options",
			`{"first_aid_questions": [{"id": 1, "question": "Q?", "options": ["a", "b", "c"], "correct_answer": 0, "difficulty": "easy"}]}`,
			"schema validation",
		},
		{
			"correct answer out of range",
			`{"first_aid_questions": [{"id": 1, "question": "Q?", "options": ["a", "b", "c", "d"], "correct_answer": 4, "difficulty": "easy"}]}`,
			"schema validation",
		},
		{
			"negative correct answer",
			`{"first_aid_questions": [{"id": 1, "question": "Q?", "options": ["a", "b", "c", "d"], "correct_answer": -1, "difficulty": "easy"}]}`,
			"schema validation",
		},
		{
			"unknown difficulty",
			`{"first_aid_questions": [{"id": 1, "question": "Q?", "options": ["a", "b", "c", "d"], "correct_answer": 0, "difficulty": "extreme"}]}`,
			"schema validation",
		},
		{
			"blank prompt",
			`{"first_aid_questions": [{"id": 1, "question": "", "options": ["a", "b", "c", "d"], "correct_answer": 0, "difficulty": "easy"}]}`,
			"schema validation",
		},
		{
			"duplicate id",
			`{"first_aid_questions": [
				{"id": 7, "question": "Q1?", "options": ["a", "b", "c", "d"], "correct_answer": 0, "difficulty": "easy"},
				{"id": 7, "question": "Q2?", "options": ["a", "b", "c", "d"], "correct_answer": 1, "difficulty": "easy"}
			]}`,
			"duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "test")
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}

			var dataErr *DataError
			if !errors.As(err, &dataErr) {
				t.Fatalf("Parse() error type = %T, want *DataError", err)
			}
			if dataErr.Source != "test" {
				t.Errorf("Source = %q, want %q", dataErr.Source, "test")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	if err == nil {
		t.Fatal("LoadFile() succeeded, want error")
	}
	var dataErr *DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("LoadFile() error type = %T, want *DataError", err)
	}
}

func TestDefault_EmbeddedBank(t *testing.T) {
	b, err := Default(nil)
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if b.Len() != 24 {
		t.Errorf("Len() = %d, want 24", b.Len())
	}
	for _, d := range AllDifficulties() {
		if got := b.CountByDifficulty(d); got != 8 {
			t.Errorf("CountByDifficulty(%s) = %d, want 8", d, got)
		}
	}
}
