package levels

import (
	"errors"
	"fmt"

	"aidquiz/internal/bank"
)

// Level is one rung of the game's progression ladder.
type Level struct {
	ID              int             `yaml:"id"`
	Name            string          `yaml:"name"`
	Icon            string          `yaml:"icon"`
	QuestionCount   int             `yaml:"question_count"`
	Difficulty      bank.Difficulty `yaml:"difficulty"`
	UnlockThreshold int             `yaml:"unlock_threshold"`
}

// Catalog is the ordered set of playable levels, ids contiguous from 1.
type Catalog struct {
	levels []Level
	byID   map[int]Level
}

// New builds a validated Catalog from levels ordered by id.
func New(lvls []Level) (*Catalog, error) {
	if err := validate(lvls); err != nil {
		return nil, &DataError{Source: "level table", Err: err}
	}
	return build(lvls), nil
}

// Default returns the built-in five level catalog.
func Default() *Catalog {
	return build(seedLevels)
}

func build(lvls []Level) *Catalog {
	c := &Catalog{
		levels: lvls,
		byID:   make(map[int]Level, len(lvls)),
	}
	for _, l := range lvls {
		c.byID[l.ID] = l
	}
	return c
}

func validate(lvls []Level) error {
	if len(lvls) == 0 {
		return errors.New("no levels")
	}

	for i, l := range lvls {
		if l.ID != i+1 {
			return fmt.Errorf("level at position %d: id %d, want %d (ids must be contiguous from 1)", i, l.ID, i+1)
		}
		if l.Name == "" {
			return fmt.Errorf("level %d: empty name", l.ID)
		}
		if l.QuestionCount <= 0 {
			return fmt.Errorf("level %d: question_count %d, must be positive", l.ID, l.QuestionCount)
		}
		if l.UnlockThreshold < 0 {
			return fmt.Errorf("level %d: negative unlock_threshold %d", l.ID, l.UnlockThreshold)
		}
		if l.Difficulty != bank.DifficultyAny && !l.Difficulty.Valid() {
			return fmt.Errorf("level %d: unknown difficulty %q", l.ID, l.Difficulty)
		}
	}

	// The entry level must always be playable.
	if lvls[0].UnlockThreshold != 0 {
		return fmt.Errorf("level 1: unlock_threshold %d, must be 0", lvls[0].UnlockThreshold)
	}

	return nil
}

// Unlocked returns the ids of every level whose threshold is within
// totalScore, ascending. Pure function of the current score.
func (c *Catalog) Unlocked(totalScore int) []int {
	ids := make([]int, 0, len(c.levels))
	for _, l := range c.levels {
		if l.UnlockThreshold <= totalScore {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// Get returns the level with the given id.
func (c *Catalog) Get(id int) (Level, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Levels returns the levels in ascending id order.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// MaxID returns the highest level id.
func (c *Catalog) MaxID() int {
	return len(c.levels)
}
