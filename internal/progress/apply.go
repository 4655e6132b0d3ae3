package progress

import (
	"sort"

	"aidquiz/internal/badges"
	"aidquiz/internal/levels"
	"aidquiz/internal/session"
)

// Apply folds a finished session into the record and returns the
// updated record plus any badges the update earned. The input record
// is not modified. Score accumulates win or lose; the level ladder
// only advances on a win.
func Apply(rec Record, res *session.Result, level levels.Level, rules []badges.Rule) (Record, []badges.Badge) {
	next := clone(rec)

	next.TotalScore += res.FinalScore
	if res.Outcome == session.StatusWon && level.ID+1 > next.MaxLevelReached {
		next.MaxLevelReached = level.ID + 1
	}

	var fresh []badges.Badge
	for _, b := range badges.Evaluate(next.TotalScore, next.MaxLevelReached, rules) {
		if next.HasBadge(string(b)) {
			continue
		}
		next.Badges = append(next.Badges, string(b))
		fresh = append(fresh, b)
	}
	sort.Strings(next.Badges)

	return next, fresh
}
