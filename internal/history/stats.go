package history

import (
	"context"
	"fmt"
)

// Stats aggregates the whole session log.
type Stats struct {
	TotalSessions     int
	Wins              int
	Losses            int
	TotalScore        int
	QuestionsAnswered int
	CorrectAnswers    int
	BestScore         int
	Accuracy          float64
}

// LevelBest is the per-level summary of recorded runs.
type LevelBest struct {
	LevelID   int
	LevelName string
	BestScore int
	Plays     int
	Wins      int
}

// Stats aggregates every recorded session.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(score), 0),
			COALESCE(SUM(questions_answered), 0),
			COALESCE(SUM(correct_count), 0),
			COALESCE(MAX(score), 0)
		 FROM sessions`,
	).Scan(&st.TotalSessions, &st.Wins, &st.TotalScore,
		&st.QuestionsAnswered, &st.CorrectAnswers, &st.BestScore)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}

	st.Losses = st.TotalSessions - st.Wins
	if st.QuestionsAnswered > 0 {
		st.Accuracy = float64(st.CorrectAnswers) / float64(st.QuestionsAnswered)
	}
	return st, nil
}

// LevelBests summarizes recorded runs per level, ascending by level id.
func (s *Store) LevelBests(ctx context.Context) ([]LevelBest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT
			level_id,
			MIN(level_name),
			MAX(score),
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0)
		 FROM sessions
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query level bests: %w", err)
	}
	defer rows.Close()

	var out []LevelBest
	for rows.Next() {
		var lb LevelBest
		if err := rows.Scan(&lb.LevelID, &lb.LevelName, &lb.BestScore, &lb.Plays, &lb.Wins); err != nil {
			return nil, fmt.Errorf("scan level best: %w", err)
		}
		out = append(out, lb)
	}
	return out, rows.Err()
}
