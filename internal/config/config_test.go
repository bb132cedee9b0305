package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG dirs at a temp dir so no user config leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("cards", "", "")
	fs.String("db", "", "")
	fs.Int("time-limit", 0, "")
	fs.String("log-level", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "flashcards.csv", cfg.Cards)
	assert.Equal(t, "", cfg.DB)
	assert.Equal(t, 15, cfg.Quiz.TimeLimit)
	assert.Equal(t, time.Second, cfg.Quiz.Tick)
	assert.Equal(t, time.Second, cfg.Quiz.CorrectDelay)
	assert.Equal(t, time.Second, cfg.Quiz.WrongDelay)
	assert.Equal(t, 1800*time.Millisecond, cfg.Quiz.TimeoutDelay)
	assert.Equal(t, 800*time.Millisecond, cfg.Quiz.SkipDelay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "state", "flashdeck", "flashdeck.log"), cfg.Log.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cards: /tmp/deck.csv
quiz:
  time_limit: 30
  skip_delay: 2s
log:
  level: debug
`), 0o644))

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/deck.csv", cfg.Cards)
	assert.Equal(t, 30, cfg.Quiz.TimeLimit)
	assert.Equal(t, 2*time.Second, cfg.Quiz.SkipDelay)
	assert.Equal(t, time.Second, cfg.Quiz.Tick)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFileFromXDGDir(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "flashdeck")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "flashdeck.yaml"), []byte("cards: xdg.csv\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "xdg.csv", cfg.Cards)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{File: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "flashdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quiz:\n  time_limit: 30\n"), 0o644))

	t.Setenv("FLASHDECK_QUIZ_TIME_LIMIT", "20")
	t.Setenv("FLASHDECK_CARDS", "env.csv")

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Quiz.TimeLimit)
	assert.Equal(t, "env.csv", cfg.Cards)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FLASHDECK_QUIZ_TIME_LIMIT", "20")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--time-limit", "5", "--cards", "flag.csv"}))

	cfg, err := Load(Options{Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Quiz.TimeLimit)
	assert.Equal(t, "flag.csv", cfg.Cards)
}

func TestLoad_UnsetFlagsKeepDefaults(t *testing.T) {
	isolate(t)

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(Options{Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Quiz.TimeLimit)
	assert.Equal(t, "flashcards.csv", cfg.Cards)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	isolate(t)
	t.Setenv("FLASHDECK_QUIZ_TIME_LIMIT", "0")

	_, err := Load(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quiz.time_limit")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Cards: "deck.csv",
			Quiz: QuizTimes{
				TimeLimit:    15,
				Tick:         time.Second,
				CorrectDelay: time.Second,
				WrongDelay:   time.Second,
				TimeoutDelay: time.Second,
				SkipDelay:    time.Second,
			},
			LLM: LLM{Timeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty cards", func(c *Config) { c.Cards = " " }, "cards"},
		{"negative limit", func(c *Config) { c.Quiz.TimeLimit = -1 }, "quiz.time_limit"},
		{"zero tick", func(c *Config) { c.Quiz.Tick = 0 }, "quiz.tick"},
		{"zero skip delay", func(c *Config) { c.Quiz.SkipDelay = 0 }, "quiz.skip_delay"},
		{"zero llm timeout", func(c *Config) { c.LLM.Timeout = 0 }, "llm.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQuizTimesController(t *testing.T) {
	q := QuizTimes{
		TimeLimit:    9,
		Tick:         time.Second,
		CorrectDelay: 1 * time.Second,
		WrongDelay:   2 * time.Second,
		TimeoutDelay: 3 * time.Second,
		SkipDelay:    4 * time.Second,
	}
	c := q.Controller()
	assert.Equal(t, 9, c.TimeLimit)
	assert.Equal(t, time.Second, c.TickInterval)
	assert.Equal(t, 2*time.Second, c.WrongDelay)
	assert.Equal(t, 4*time.Second, c.SkipDelay)
}
