package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aidquiz/internal/bank"
	"aidquiz/internal/config"
	"aidquiz/internal/game"
	"aidquiz/internal/history"
	"aidquiz/internal/levels"
	"aidquiz/internal/logger"
	"aidquiz/internal/progress"
	"aidquiz/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "aidquiz",
	Short: "First aid quiz game for the terminal",
	Long:  "Aidquiz — a first aid quiz game: clear graded levels, keep your lives, and earn badges as your lifetime score unlocks harder material.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides the default search paths)")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for save data and history (overrides config)")
	rootCmd.PersistentFlags().String("questions", "", "Path to a question bank file (default: embedded bank)")
	rootCmd.PersistentFlags().String("levels", "", "Path to a level catalog file (default: built-in catalog)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration and applies the persistent flag
// overrides, flags winning over file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		cfg.QuestionsPath = p
	}
	if p, _ := cmd.Flags().GetString("levels"); p != "" {
		cfg.LevelsPath = p
	}

	return cfg, nil
}

// newGame assembles the game core from configuration: question bank,
// level catalog, progress store and (best effort) session history.
// The returned cleanup flushes the logger and closes the history
// database. A nil rng leaves question selection randomly seeded.
func newGame(cmd *cobra.Command, rng *rand.Rand, withHistory bool) (*game.Game, *config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	var b *bank.Bank
	if cfg.QuestionsPath != "" {
		questions, err := bank.LoadFile(cfg.QuestionsPath)
		if err != nil {
			log.Sync()
			return nil, nil, nil, err
		}
		b = bank.New(questions, rng)
	} else {
		b, err = bank.Default(rng)
		if err != nil {
			log.Sync()
			return nil, nil, nil, err
		}
	}

	catalog := levels.Default()
	if cfg.LevelsPath != "" {
		catalog, err = levels.LoadFile(cfg.LevelsPath)
		if err != nil {
			log.Sync()
			return nil, nil, nil, err
		}
	}

	// History never blocks play: if the database cannot be opened the
	// game runs without a session log.
	var hist *history.Store
	if withHistory {
		hist, err = history.Open(cfg.HistoryPath())
		if err != nil {
			log.Warn("session history unavailable", zap.Error(err))
			hist = nil
		}
	}

	g := game.New(game.Options{
		Bank:         b,
		Catalog:      catalog,
		Progress:     progress.NewStore(log),
		ProgressPath: cfg.ProgressPath(),
		History:      hist,
		Session: session.Config{
			Reward: cfg.Scoring.Reward,
			Lives:  cfg.Scoring.Lives,
		},
		Logger: log,
	})

	cleanup := func() {
		if hist != nil {
			hist.Close()
		}
		log.Sync()
	}
	return g, cfg, cleanup, nil
}
