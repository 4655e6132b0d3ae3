package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the test away from any real user config or data dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 10, cfg.Scoring.Reward)
	assert.Equal(t, 3, cfg.Scoring.Lives)
	assert.Empty(t, cfg.QuestionsPath)
	assert.Empty(t, cfg.LevelsPath)
	assert.Contains(t, cfg.DataDir, "aidquiz")
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)

	doc := `env: production
data_dir: /tmp/aidquiz-test
questions_path: custom/questions.json
scoring:
  reward: 25
  lives: 5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/tmp/aidquiz-test", cfg.DataDir)
	assert.Equal(t, "custom/questions.json", cfg.QuestionsPath)
	assert.Equal(t, 25, cfg.Scoring.Reward)
	assert.Equal(t, 5, cfg.Scoring.Lives)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("AIDQUIZ_DATA_DIR", "/tmp/env-data")
	t.Setenv("AIDQUIZ_SCORING_LIVES", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-data", cfg.DataDir)
	assert.Equal(t, 7, cfg.Scoring.Lives)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidScoring(t *testing.T) {
	isolate(t)

	doc := "scoring:\n  lives: 0\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "scoring.lives")
}

func TestPaths(t *testing.T) {
	cfg := &Config{DataDir: "/data/aidquiz"}

	assert.Equal(t, filepath.Join("/data/aidquiz", "progress.json"), cfg.ProgressPath())
	assert.Equal(t, filepath.Join("/data/aidquiz", "history.db"), cfg.HistoryPath())
}
