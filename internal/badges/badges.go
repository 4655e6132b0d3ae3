package badges

// Badge identifies an earned achievement.
type Badge string

// Rule is a declarative award: the badge is earned once the player's
// lifetime numbers meet every minimum it names. Zero minimums are
// ignored.
type Rule struct {
	Badge       Badge
	Name        string
	Icon        string
	Description string
	MinScore    int // lifetime score floor
	MinLevel    int // highest reached level floor
}

// Evaluate returns every badge earned at the given lifetime score and
// highest reached level, in rule order. Pure function; callers diff
// the result against already held badges.
func Evaluate(totalScore, maxLevel int, rules []Rule) []Badge {
	earned := make([]Badge, 0, len(rules))
	for _, r := range rules {
		if totalScore < r.MinScore {
			continue
		}
		if maxLevel < r.MinLevel {
			continue
		}
		earned = append(earned, r.Badge)
	}
	return earned
}

// Find returns the rule that awards b.
func Find(b Badge, rules []Rule) (Rule, bool) {
	for _, r := range rules {
		if r.Badge == b {
			return r, true
		}
	}
	return Rule{}, false
}
