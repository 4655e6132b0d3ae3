package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aidquiz/internal/badges"
	"aidquiz/internal/history"
	"aidquiz/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime progress and session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		g, cfg, cleanup, err := newGame(cmd, nil, false)
		if err != nil {
			return err
		}
		defer cleanup()

		rec := g.Progress()
		fmt.Println(styleTitle.Render("Progress"))
		fmt.Printf("  Lifetime score:   %d\n", rec.TotalScore)
		fmt.Printf("  Highest level:    %d of %d\n", min(rec.MaxLevelReached, len(g.Levels())), len(g.Levels()))
		if len(rec.Badges) == 0 {
			fmt.Println("  Badges:           none yet")
		} else {
			fmt.Println("  Badges:")
			for _, id := range rec.Badges {
				if rule, ok := badges.Find(badges.Badge(id), g.BadgeRules()); ok {
					fmt.Printf("    %s %s — %s\n", rule.Icon, rule.Name, rule.Description)
				} else {
					fmt.Printf("    %s\n", id)
				}
			}
		}

		hist, err := history.Open(cfg.HistoryPath())
		if err != nil {
			fmt.Println()
			fmt.Println(styleSubtle.Render("No session history recorded yet."))
			return nil
		}
		defer hist.Close()

		return printHistory(hist, recent)
	},
}

func init() {
	statsCmd.Flags().Int("recent", 5, "How many recent sessions to list")
}

func printHistory(hist *history.Store, recent int) error {
	ctx := context.Background()

	st, err := hist.Stats(ctx)
	if err != nil {
		return err
	}
	if st.TotalSessions == 0 {
		fmt.Println()
		fmt.Println(styleSubtle.Render("No sessions played yet."))
		return nil
	}

	fmt.Println()
	fmt.Println(styleTitle.Render("Sessions"))
	fmt.Printf("  Played: %d   Won: %d   Lost: %d   Best score: %d   Accuracy: %.0f%%\n",
		st.TotalSessions, st.Wins, st.Losses, st.BestScore, st.Accuracy*100)

	bests, err := hist.LevelBests(ctx)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(styleTitle.Render("Per level"))
	for _, lb := range bests {
		fmt.Printf("  %-22s best %3d   %d plays, %d wins\n",
			lb.LevelName, lb.BestScore, lb.Plays, lb.Wins)
	}

	if recent > 0 {
		recs, err := hist.RecentSessions(ctx, recent)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(styleTitle.Render("Recent"))
		for _, r := range recs {
			outcome := styleWrong.Render(strings.ToUpper(r.Outcome))
			if r.Outcome == session.StatusWon.String() {
				outcome = styleCorrect.Render(strings.ToUpper(r.Outcome))
			}
			fmt.Printf("  %s  %-22s %s  score %d, %d/%d correct\n",
				r.PlayedAt.Local().Format("2006-01-02 15:04"),
				r.LevelName, outcome, r.Score, r.CorrectCount, r.QuestionsAnswered)
		}
	}

	return nil
}
