package progress

import (
	"sort"
	"testing"

	"aidquiz/internal/badges"
	"aidquiz/internal/levels"
	"aidquiz/internal/session"
)

func testRules() []badges.Rule {
	return []badges.Rule{
		{Badge: "ten-points", MinScore: 10},
		{Badge: "fifty-points", MinScore: 50},
		{Badge: "reached-three", MinLevel: 3},
	}
}

func finished(outcome session.Status, score, levelID int) *session.Result {
	return &session.Result{
		SessionID:  "sess",
		LevelID:    levelID,
		Outcome:    outcome,
		FinalScore: score,
	}
}

func TestApply_WinAddsScoreAndAdvancesLadder(t *testing.T) {
	rec := Default()

	next, fresh := Apply(rec, finished(session.StatusWon, 30, 1), levels.Level{ID: 1}, testRules())

	if next.TotalScore != 30 {
		t.Errorf("TotalScore = %d, want 30", next.TotalScore)
	}
	if next.MaxLevelReached != 2 {
		t.Errorf("MaxLevelReached = %d, want 2", next.MaxLevelReached)
	}
	if len(fresh) != 1 || fresh[0] != "ten-points" {
		t.Errorf("fresh badges = %v, want [ten-points]", fresh)
	}
}

func TestApply_LossStillAddsScore(t *testing.T) {
	rec := Default()
	rec.TotalScore = 40
	rec.MaxLevelReached = 3

	next, _ := Apply(rec, finished(session.StatusLost, 20, 3), levels.Level{ID: 3}, testRules())

	if next.TotalScore != 60 {
		t.Errorf("TotalScore = %d, want 60", next.TotalScore)
	}
	if next.MaxLevelReached != 3 {
		t.Errorf("MaxLevelReached = %d, want 3 (losses never advance)", next.MaxLevelReached)
	}
}

func TestApply_LadderNeverDecreases(t *testing.T) {
	rec := Default()
	rec.MaxLevelReached = 5

	next, _ := Apply(rec, finished(session.StatusWon, 30, 1), levels.Level{ID: 1}, testRules())

	if next.MaxLevelReached != 5 {
		t.Errorf("MaxLevelReached = %d, want 5 (replays never lower the ladder)", next.MaxLevelReached)
	}
}

func TestApply_WinAtFrontierAdvancesByOne(t *testing.T) {
	rec := Default()
	rec.MaxLevelReached = 3

	next, _ := Apply(rec, finished(session.StatusWon, 50, 3), levels.Level{ID: 3}, testRules())

	if next.MaxLevelReached != 4 {
		t.Errorf("MaxLevelReached = %d, want 4", next.MaxLevelReached)
	}
}

func TestApply_BadgesAreASet(t *testing.T) {
	rec := Default()
	rec.TotalScore = 15
	rec.Badges = []string{"ten-points"}

	next, fresh := Apply(rec, finished(session.StatusWon, 40, 2), levels.Level{ID: 2}, testRules())

	// 55 points now: fifty-points is new, ten-points already held,
	// reached-three met by the ladder moving to 3.
	wantFresh := map[badges.Badge]bool{"fifty-points": true, "reached-three": true}
	if len(fresh) != 2 || !wantFresh[fresh[0]] || !wantFresh[fresh[1]] {
		t.Errorf("fresh = %v, want fifty-points and reached-three", fresh)
	}

	if len(next.Badges) != 3 {
		t.Fatalf("Badges = %v, want 3 unique entries", next.Badges)
	}
	if !sort.StringsAreSorted(next.Badges) {
		t.Errorf("Badges not sorted: %v", next.Badges)
	}

	seen := map[string]bool{}
	for _, b := range next.Badges {
		if seen[b] {
			t.Errorf("duplicate badge %q", b)
		}
		seen[b] = true
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	rec := Default()
	rec.TotalScore = 5
	rec.Badges = []string{"held"}
	rec.Settings[SettingDifficultyHints] = false

	Apply(rec, finished(session.StatusWon, 100, 1), levels.Level{ID: 1}, testRules())

	if rec.TotalScore != 5 {
		t.Errorf("input TotalScore mutated to %d", rec.TotalScore)
	}
	if rec.MaxLevelReached != 1 {
		t.Errorf("input MaxLevelReached mutated to %d", rec.MaxLevelReached)
	}
	if len(rec.Badges) != 1 || rec.Badges[0] != "held" {
		t.Errorf("input Badges mutated: %v", rec.Badges)
	}
	if rec.Settings[SettingDifficultyHints] {
		t.Error("input Settings mutated")
	}
}

func TestRecord_Setting(t *testing.T) {
	rec := Record{Settings: map[string]bool{SettingDifficultyHints: false}}

	if rec.Setting(SettingDifficultyHints) {
		t.Error("Setting(difficulty_hints) = true, want stored false")
	}
	if !rec.Setting(SettingShowExplanations) {
		t.Error("Setting(show_explanations) = false, want default true")
	}
	if rec.Setting("no_such_toggle") {
		t.Error("Setting(no_such_toggle) = true, want false")
	}
}
