// Package game is the presentation boundary: the one surface the CLI
// (or any other front end) is allowed to call. It wires the question
// bank, level catalog, session engine and progress store together and
// owns at most one active session at a time.
package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aidquiz/internal/badges"
	"aidquiz/internal/bank"
	"aidquiz/internal/history"
	"aidquiz/internal/levels"
	"aidquiz/internal/progress"
	"aidquiz/internal/session"
)

// Options wires a Game. Bank, Catalog and Progress are required;
// History is optional (nil disables the session log).
type Options struct {
	Bank         *bank.Bank
	Catalog      *levels.Catalog
	Progress     *progress.Store
	ProgressPath string
	History      *history.Store
	BadgeRules   []badges.Rule
	Session      session.Config
	Logger       *zap.Logger
}

// Game holds the loaded game data and the player's progress between
// sessions. It is driven synchronously by a single caller; nothing in
// here is safe for concurrent use.
type Game struct {
	bank       *bank.Bank
	catalog    *levels.Catalog
	store      *progress.Store
	path       string
	hist       *history.Store
	rules      []badges.Rule
	sessionCfg session.Config
	logger     *zap.Logger

	record  progress.Record
	active  *session.Session
	awarded []badges.Badge
}

// New builds a Game and loads the player's progress from disk. Missing
// or corrupt save data starts a fresh record, never an error.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.BadgeRules == nil {
		opts.BadgeRules = badges.DefaultRules()
	}
	if opts.Session == (session.Config{}) {
		opts.Session = session.DefaultConfig()
	}

	return &Game{
		bank:       opts.Bank,
		catalog:    opts.Catalog,
		store:      opts.Progress,
		path:       opts.ProgressPath,
		hist:       opts.History,
		rules:      opts.BadgeRules,
		sessionCfg: opts.Session,
		logger:     opts.Logger,
		record:     opts.Progress.Load(opts.ProgressPath),
	}
}

// Progress returns the player's current progress record.
func (g *Game) Progress() progress.Record {
	return g.record
}

// Levels returns every level in the catalog, ascending by id.
func (g *Game) Levels() []levels.Level {
	return g.catalog.Levels()
}

// Level returns the catalog entry for id.
func (g *Game) Level(id int) (levels.Level, bool) {
	return g.catalog.Get(id)
}

// UnlockedLevels returns the ids playable at the current total score.
func (g *Game) UnlockedLevels() []int {
	return g.catalog.Unlocked(g.record.TotalScore)
}

// IsUnlocked reports whether the level can be played right now.
func (g *Game) IsUnlocked(levelID int) bool {
	l, ok := g.catalog.Get(levelID)
	return ok && l.UnlockThreshold <= g.record.TotalScore
}

// BadgeRules returns the award rules in effect.
func (g *Game) BadgeRules() []badges.Rule {
	return g.rules
}

// StartSession begins a play-through of the given level, drawing its
// question sequence from the bank. An already running session is
// abandoned: nothing of it is persisted.
func (g *Game) StartSession(levelID int) (*session.Session, error) {
	level, ok := g.catalog.Get(levelID)
	if !ok {
		return nil, ErrUnknownLevel
	}
	if level.UnlockThreshold > g.record.TotalScore {
		return nil, ErrLevelLocked
	}

	questions := g.bank.Select(level.QuestionCount, level.Difficulty, nil)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(questions) < level.QuestionCount {
		// Fewer matching questions than the level asks for is fine;
		// the session just runs shorter.
		g.logger.Debug("short question draw",
			zap.Int("level", level.ID),
			zap.Int("want", level.QuestionCount),
			zap.Int("got", len(questions)))
	}

	s, err := session.New(uuid.New().String(), level, questions, g.sessionCfg)
	if err != nil {
		return nil, err
	}

	g.active = s
	g.awarded = nil
	return s, nil
}

// Session returns the active session, nil when none is running.
func (g *Game) Session() *session.Session {
	return g.active
}

// CurrentQuestion returns the question awaiting an answer, nil when no
// session is running or the active one has ended.
func (g *Game) CurrentQuestion() *bank.Question {
	if g.active == nil {
		return nil
	}
	return g.active.CurrentQuestion()
}

// SubmitAnswer forwards the choice to the active session. When the
// submission ends the session, the result is folded into the progress
// record, saved, logged to history, and returned; otherwise the result
// is nil and play continues. Persistence failures are warnings: the
// updated record stays live in memory either way.
func (g *Game) SubmitAnswer(choice int) (*session.Result, error) {
	if g.active == nil {
		return nil, ErrNoSession
	}

	res, err := g.active.Submit(choice)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}

	level := g.active.Level()
	answers := g.active.Answers()

	g.record, g.awarded = progress.Apply(g.record, res, level, g.rules)
	if err := g.store.Save(g.record, g.path); err != nil {
		g.logger.Warn("progress save failed", zap.Error(err))
	}
	g.appendHistory(res, level, answers)

	g.active = nil
	return res, nil
}

// LastAwarded returns the badges earned by the most recently finished
// session.
func (g *Game) LastAwarded() []badges.Badge {
	return g.awarded
}

// Abandon discards the active session without persisting anything.
func (g *Game) Abandon() {
	g.active = nil
}

// appendHistory logs the finished session. History is best effort:
// failures never interrupt play.
func (g *Game) appendHistory(res *session.Result, level levels.Level, answers []session.AnswerRecord) {
	if g.hist == nil {
		return
	}

	rows := make([]history.AnswerRow, len(answers))
	for i, a := range answers {
		rows[i] = history.AnswerRow{
			QuestionID:  a.QuestionID,
			ChosenIndex: a.ChosenIndex,
			Correct:     a.Correct,
		}
	}

	rec := history.SessionRecord{
		SessionID:         res.SessionID,
		LevelID:           level.ID,
		LevelName:         level.Name,
		Outcome:           res.Outcome.String(),
		Score:             res.FinalScore,
		QuestionsAnswered: res.QuestionsAnswered,
		CorrectCount:      res.CorrectCount,
		LivesLeft:         res.LivesLeft,
		Accuracy:          res.Accuracy,
		PlayedAt:          time.Now(),
	}

	if err := g.hist.AppendSession(context.Background(), rec, rows); err != nil {
		g.logger.Warn("history append failed", zap.Error(err))
	}
}
