package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aidquiz/internal/badges"
	"aidquiz/internal/bank"
	"aidquiz/internal/game"
	"aidquiz/internal/progress"
	"aidquiz/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a quiz level",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelID, _ := cmd.Flags().GetInt("level")
		seed, _ := cmd.Flags().GetUint64("seed")

		var rng *rand.Rand
		if seed != 0 {
			rng = rand.New(rand.NewPCG(seed, 0))
		}

		g, _, cleanup, err := newGame(cmd, rng, true)
		if err != nil {
			return err
		}
		defer cleanup()

		in := bufio.NewScanner(os.Stdin)
		for {
			id := levelID
			if id == 0 {
				id, err = pickLevel(g, in)
				if err != nil {
					return err
				}
				if id == 0 {
					return nil
				}
			}

			if err := playLevel(g, in, id); err != nil {
				return err
			}

			if !promptYesNo(in, "Play again? [y/N] ") {
				return nil
			}
			// A fixed --level replays the same level; otherwise back to
			// the level picker.
		}
	},
}

func init() {
	playCmd.Flags().Int("level", 0, "Level to play (default: choose interactively)")
	playCmd.Flags().Uint64("seed", 0, "Random seed for question selection (0 = random)")
}

// pickLevel shows the unlocked levels and reads a selection. Returns 0
// when the player quits.
func pickLevel(g *game.Game, in *bufio.Scanner) (int, error) {
	rec := g.Progress()
	fmt.Println(styleTitle.Render("🚑 Aidquiz"))
	fmt.Println(styleSubtle.Render(fmt.Sprintf("Lifetime score: %d    Badges: %d", rec.TotalScore, len(rec.Badges))))
	fmt.Println()
	printLevelTable(g)
	fmt.Println()

	for {
		fmt.Print("Choose a level (q to quit): ")
		if !in.Scan() {
			return 0, in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "q" || line == "quit" {
			return 0, nil
		}

		id, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println(styleWrong.Render("Enter a level number."))
			continue
		}
		if !g.IsUnlocked(id) {
			fmt.Println(styleWrong.Render("That level is not unlocked yet."))
			continue
		}
		return id, nil
	}
}

// playLevel runs one session to its terminal result.
func playLevel(g *game.Game, in *bufio.Scanner, levelID int) error {
	s, err := g.StartSession(levelID)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrUnknownLevel):
			return fmt.Errorf("level %d does not exist", levelID)
		case errors.Is(err, game.ErrLevelLocked):
			return fmt.Errorf("level %d is locked (score %d, need %d)",
				levelID, g.Progress().TotalScore, mustLevel(g, levelID).UnlockThreshold)
		default:
			return err
		}
	}

	level := s.Level()
	fmt.Println()
	fmt.Println(styleTitle.Render(fmt.Sprintf("%s  %s", level.Icon, level.Name)))
	if g.Progress().Setting(progress.SettingDifficultyHints) && level.Difficulty != bank.DifficultyAny {
		fmt.Println(styleSubtle.Render("Difficulty: " + level.Difficulty.DisplayName()))
	}

	for {
		q := g.CurrentQuestion()
		if q == nil {
			break
		}

		fmt.Println()
		fmt.Printf("%s  %s\n",
			styleSubtle.Render(fmt.Sprintf("[%d/%d]", s.Index()+1, s.Len())),
			q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		choice := promptChoice(in, len(q.Options))
		if choice < 0 {
			g.Abandon()
			fmt.Println(styleSubtle.Render("Session abandoned, nothing saved."))
			return nil
		}

		correctIndex := q.CorrectIndex
		explanation := q.Explanation

		res, err := g.SubmitAnswer(choice)
		if err != nil {
			return err
		}

		if choice == correctIndex {
			fmt.Println(styleCorrect.Render("✔ Correct!"))
		} else {
			fmt.Println(styleWrong.Render(fmt.Sprintf("✘ Wrong — the answer was %d) %s",
				correctIndex+1, q.Options[correctIndex])))
		}
		if explanation != "" && g.Progress().Setting(progress.SettingShowExplanations) {
			fmt.Println(styleSubtle.Render(explanation))
		}

		if res != nil {
			printResult(g, res)
			return nil
		}
		fmt.Println(styleSubtle.Render(fmt.Sprintf("Lives: %s    Score: %d",
			strings.Repeat("♥", s.Lives()), s.Score())))
	}

	return nil
}

// promptChoice reads a 1-based option number, returning the 0-based
// index, or -1 when the player quits.
func promptChoice(in *bufio.Scanner, n int) int {
	for {
		fmt.Printf("Your answer [1-%d] (q to quit): ", n)
		if !in.Scan() {
			return -1
		}
		line := strings.TrimSpace(in.Text())
		if line == "q" || line == "quit" {
			return -1
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > n {
			fmt.Println(styleWrong.Render("Pick one of the numbered options."))
			continue
		}
		return choice - 1
	}
}

func promptYesNo(in *bufio.Scanner, prompt string) bool {
	fmt.Print(prompt)
	if !in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(in.Text()))
	return answer == "y" || answer == "yes"
}

// printResult renders the end-of-session summary and any new badges.
func printResult(g *game.Game, res *session.Result) {
	grade := res.Grade()

	var sb strings.Builder
	if res.Outcome == session.StatusWon {
		sb.WriteString(styleCorrect.Render("Level complete!"))
	} else {
		sb.WriteString(styleWrong.Render("Out of lives!"))
	}
	sb.WriteString(fmt.Sprintf("\nScore: %d   Accuracy: %.0f%%   Lives left: %d",
		res.FinalScore, res.Accuracy*100, res.LivesLeft))
	sb.WriteString(fmt.Sprintf("\n%s %s", grade.Icon(), grade.Message()))

	fmt.Println()
	fmt.Println(styleCard.Render(sb.String()))

	for _, b := range g.LastAwarded() {
		rule, ok := badges.Find(b, g.BadgeRules())
		if !ok {
			continue
		}
		fmt.Println(styleBadge.Render(fmt.Sprintf("%s  New badge: %s — %s",
			rule.Icon, rule.Name, rule.Description)))
	}

	rec := g.Progress()
	fmt.Println(styleSubtle.Render(fmt.Sprintf("Lifetime score: %d", rec.TotalScore)))
}
