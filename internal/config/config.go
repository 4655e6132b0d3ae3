package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from config files and
// environment variables (AIDQUIZ_ prefix).
type Config struct {
	Env           string  `mapstructure:"env"`            // application environment (local, production)
	DataDir       string  `mapstructure:"data_dir"`       // directory for save data and history
	QuestionsPath string  `mapstructure:"questions_path"` // question bank file, empty = embedded bank
	LevelsPath    string  `mapstructure:"levels_path"`    // level catalog file, empty = built-in catalog
	Scoring       Scoring `mapstructure:"scoring"`        // session rules section
}

// Scoring tunes the session rules.
type Scoring struct {
	Reward int `mapstructure:"reward"` // points per correct answer
	Lives  int `mapstructure:"lives"`  // wrong answers before a session is lost
}

// ProgressPath returns the progress save file location.
func (c *Config) ProgressPath() string {
	return filepath.Join(c.DataDir, "progress.json")
}

// HistoryPath returns the session history database location.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.db")
}

// Load reads configuration from config files and environment
// variables. A non-empty configFile forces that exact file; otherwise
// the standard locations are searched and a missing file is fine.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "aidquiz"))
		}
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// Defaults keep the game playable with no config file at all.
	v.SetDefault("env", "local")
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("questions_path", "")
	v.SetDefault("levels_path", "")
	v.SetDefault("scoring.reward", 10)
	v.SetDefault("scoring.lives", 3)

	v.SetEnvPrefix("aidquiz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Scoring.Reward < 0 {
		return fmt.Errorf("scoring.reward %d, must not be negative", c.Scoring.Reward)
	}
	if c.Scoring.Lives <= 0 {
		return fmt.Errorf("scoring.lives %d, must be positive", c.Scoring.Lives)
	}
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	return nil
}

// defaultDataDir resolves the save data directory in priority order:
// 1. $XDG_DATA_HOME/aidquiz
// 2. ~/.local/share/aidquiz
// 3. the working directory, when no home can be resolved
func defaultDataDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "aidquiz")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "aidquiz")
}
