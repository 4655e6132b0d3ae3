package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"aidquiz/internal/game"
	"aidquiz/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and their unlock status",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, cleanup, err := newGame(cmd, nil, false)
		if err != nil {
			return err
		}
		defer cleanup()

		fmt.Println(styleTitle.Render("Levels"))
		printLevelTable(g)
		fmt.Println()
		fmt.Println(styleSubtle.Render(fmt.Sprintf("Lifetime score: %d", g.Progress().TotalScore)))
		return nil
	},
}

// printLevelTable lists every level with its unlock state.
func printLevelTable(g *game.Game) {
	for _, l := range g.Levels() {
		line := fmt.Sprintf("%d. %s %-22s %d questions, %s",
			l.ID, l.Icon, l.Name, l.QuestionCount, l.Difficulty.DisplayName())
		if g.IsUnlocked(l.ID) {
			fmt.Println("  " + line)
		} else {
			fmt.Println("  " + styleLocked.Render(
				fmt.Sprintf("%s  🔒 unlocks at %d points", line, l.UnlockThreshold)))
		}
	}
}

// mustLevel fetches a level known to exist.
func mustLevel(g *game.Game, id int) levels.Level {
	l, _ := g.Level(id)
	return l
}
