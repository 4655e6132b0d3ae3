package history

import (
	"context"
	"fmt"
	"time"
)

// SessionRecord is one finished session as stored in the log.
type SessionRecord struct {
	SessionID         string
	LevelID           int
	LevelName         string
	Outcome           string
	Score             int
	QuestionsAnswered int
	CorrectCount      int
	LivesLeft         int
	Accuracy          float64
	PlayedAt          time.Time
}

// AnswerRow is one submitted answer within a session.
type AnswerRow struct {
	QuestionID  int
	ChosenIndex int
	Correct     bool
}

// AppendSession writes a finished session and its answers in one
// transaction.
func (s *Store) AppendSession(ctx context.Context, rec SessionRecord, answers []AnswerRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions
			(id, level_id, level_name, outcome, score, questions_answered,
			 correct_count, lives_left, accuracy, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.LevelID, rec.LevelName, rec.Outcome, rec.Score,
		rec.QuestionsAnswered, rec.CorrectCount, rec.LivesLeft, rec.Accuracy,
		rec.PlayedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for _, a := range answers {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answers (session_id, question_id, chosen_index, correct)
			 VALUES (?, ?, ?, ?)`,
			rec.SessionID, a.QuestionID, a.ChosenIndex, a.Correct,
		)
		if err != nil {
			return fmt.Errorf("insert answer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level_id, level_name, outcome, score, questions_answered,
			correct_count, lives_left, accuracy, played_at
		 FROM sessions
		 ORDER BY played_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		err := rows.Scan(
			&rec.SessionID, &rec.LevelID, &rec.LevelName, &rec.Outcome,
			&rec.Score, &rec.QuestionsAnswered, &rec.CorrectCount,
			&rec.LivesLeft, &rec.Accuracy, &rec.PlayedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SessionAnswers returns the answers of one session in submission order.
func (s *Store) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, chosen_index, correct
		 FROM answers
		 WHERE session_id = ?
		 ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRow
	for rows.Next() {
		var a AnswerRow
		if err := rows.Scan(&a.QuestionID, &a.ChosenIndex, &a.Correct); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
