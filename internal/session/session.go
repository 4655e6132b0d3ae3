package session

import (
	"errors"
	"fmt"

	"aidquiz/internal/bank"
	"aidquiz/internal/levels"
)

// ErrSessionFinished is returned by Submit once the session has ended.
// A finished session never mutates again.
var ErrSessionFinished = errors.New("session already finished")

// AnswerRecord is one submitted answer.
type AnswerRecord struct {
	QuestionID  int
	ChosenIndex int
	Correct     bool
}

// Session walks a player through one level's question sequence. It is
// a pure state machine: no I/O, no clock, mutated only through Submit.
// One Session is created per play and discarded once its Result has
// been folded into the progress record.
type Session struct {
	id        string
	level     levels.Level
	questions []bank.Question
	cfg       Config

	index   int
	lives   int
	score   int
	answers []AnswerRecord
	status  Status
	result  *Result
}

// New starts a session over the given question sequence.
func New(id string, level levels.Level, questions []bank.Question, cfg Config) (*Session, error) {
	if len(questions) == 0 {
		return nil, errors.New("no questions")
	}
	if cfg.Lives <= 0 {
		return nil, fmt.Errorf("lives %d, must be positive", cfg.Lives)
	}
	if cfg.Reward < 0 {
		return nil, fmt.Errorf("reward %d, must not be negative", cfg.Reward)
	}

	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
	}

	qs := make([]bank.Question, len(questions))
	copy(qs, questions)

	return &Session{
		id:        id,
		level:     level,
		questions: qs,
		cfg:       cfg,
		lives:     cfg.Lives,
		answers:   make([]AnswerRecord, 0, len(qs)),
		status:    StatusInProgress,
	}, nil
}

// Submit evaluates the player's choice for the current question and
// advances the state machine. It returns the Result when this
// submission ends the session, nil while more questions remain.
// Choices outside the option range count as wrong answers.
func (s *Session) Submit(choice int) (*Result, error) {
	if s.status != StatusInProgress {
		return nil, ErrSessionFinished
	}

	q := s.questions[s.index]
	correct := q.IsCorrect(choice)
	if correct {
		s.score += s.cfg.Reward
	} else {
		s.lives--
	}
	s.answers = append(s.answers, AnswerRecord{
		QuestionID:  q.ID,
		ChosenIndex: choice,
		Correct:     correct,
	})

	// Running out of lives ends the session even on the last question.
	switch {
	case s.lives == 0:
		s.finish(StatusLost)
	case s.index == len(s.questions)-1:
		s.finish(StatusWon)
	default:
		s.index++
	}

	return s.result, nil
}

func (s *Session) finish(outcome Status) {
	s.status = outcome

	correct := 0
	for _, a := range s.answers {
		if a.Correct {
			correct++
		}
	}
	accuracy := 0.0
	if len(s.answers) > 0 {
		accuracy = float64(correct) / float64(len(s.answers))
	}

	s.result = &Result{
		SessionID:         s.id,
		LevelID:           s.level.ID,
		Outcome:           outcome,
		FinalScore:        s.score,
		QuestionsAnswered: len(s.answers),
		CorrectCount:      correct,
		LivesLeft:         s.lives,
		Accuracy:          accuracy,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Level returns the level being played.
func (s *Session) Level() levels.Level { return s.level }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Score returns the score earned so far in this session.
func (s *Session) Score() int { return s.score }

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// CurrentQuestion returns the question awaiting an answer, or nil once
// the session has ended.
func (s *Session) CurrentQuestion() *bank.Question {
	if s.status != StatusInProgress {
		return nil
	}
	q := s.questions[s.index]
	return &q
}

// Answers returns a copy of the submitted answers in order.
func (s *Session) Answers() []AnswerRecord {
	out := make([]AnswerRecord, len(s.answers))
	copy(out, s.answers)
	return out
}

// Result returns the final result, nil while the session is running.
func (s *Session) Result() *Result {
	return s.result
}
