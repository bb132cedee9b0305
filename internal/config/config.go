package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/flashdeck/internal/quiz"
)

// AppName names the config file, env prefix and XDG subdirectories.
const AppName = "flashdeck"

// Config holds application configuration loaded from defaults, an optional
// YAML file, FLASHDECK_* environment variables and command-line flags.
type Config struct {
	Cards string    `mapstructure:"cards"` // path to the CSV deck
	DB    string    `mapstructure:"db"`    // path to the history database; empty means the XDG default
	Quiz  QuizTimes `mapstructure:"quiz"`
	Log   Log       `mapstructure:"log"`
	LLM   LLM       `mapstructure:"llm"`
}

// QuizTimes holds the countdown budget and the feedback pauses.
type QuizTimes struct {
	TimeLimit    int           `mapstructure:"time_limit"` // countdown units per card
	Tick         time.Duration `mapstructure:"tick"`       // length of one unit
	CorrectDelay time.Duration `mapstructure:"correct_delay"`
	WrongDelay   time.Duration `mapstructure:"wrong_delay"`
	TimeoutDelay time.Duration `mapstructure:"timeout_delay"`
	SkipDelay    time.Duration `mapstructure:"skip_delay"`
}

// Log configures the file logger.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// LLM selects the provider used by the card generator.
type LLM struct {
	Provider string        `mapstructure:"provider"` // empty means discover from *_API_KEY env vars
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Options controls where Load looks for overrides.
type Options struct {
	// File is an explicit config file. When set it must exist.
	File string

	// Flags, when non-nil, are bound to their config keys. Only flags that
	// were set on the command line take effect.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"cards":      "cards",
	"db":         "db",
	"time-limit": "quiz.time_limit",
	"log-level":  "log.level",
}

// Load reads configuration in priority order: flags, environment, config
// file, defaults.
func Load(opts Options) (*Config, error) {
	// A .env next to the deck may carry API keys; it never overrides the
	// real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(AppName)
	v.SetConfigType("yaml")
	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.AddConfigPath(".")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Log.File == "" {
		dir, err := StateDir()
		if err != nil {
			return nil, err
		}
		cfg.Log.File = filepath.Join(dir, AppName+".log")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := quiz.DefaultConfig()

	v.SetDefault("cards", "flashcards.csv")
	v.SetDefault("db", "")
	v.SetDefault("quiz.time_limit", d.TimeLimit)
	v.SetDefault("quiz.tick", d.TickInterval)
	v.SetDefault("quiz.correct_delay", d.CorrectDelay)
	v.SetDefault("quiz.wrong_delay", d.WrongDelay)
	v.SetDefault("quiz.timeout_delay", d.TimeoutDelay)
	v.SetDefault("quiz.skip_delay", d.SkipDelay)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout", 60*time.Second)
}

// Validate rejects settings the quiz cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Cards) == "" {
		return errors.New("cards path must not be empty")
	}
	if c.Quiz.TimeLimit <= 0 {
		return fmt.Errorf("quiz.time_limit must be positive, got %d", c.Quiz.TimeLimit)
	}
	durations := []struct {
		key string
		val time.Duration
	}{
		{"quiz.tick", c.Quiz.Tick},
		{"quiz.correct_delay", c.Quiz.CorrectDelay},
		{"quiz.wrong_delay", c.Quiz.WrongDelay},
		{"quiz.timeout_delay", c.Quiz.TimeoutDelay},
		{"quiz.skip_delay", c.Quiz.SkipDelay},
	}
	for _, d := range durations {
		if d.val <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.key, d.val)
		}
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive, got %s", c.LLM.Timeout)
	}
	return nil
}

// Controller returns the round timing for the quiz controller.
func (q QuizTimes) Controller() quiz.Config {
	return quiz.Config{
		TimeLimit:    q.TimeLimit,
		TickInterval: q.Tick,
		CorrectDelay: q.CorrectDelay,
		WrongDelay:   q.WrongDelay,
		TimeoutDelay: q.TimeoutDelay,
		SkipDelay:    q.SkipDelay,
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/flashdeck, defaulting to ~/.config.
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/flashdeck, defaulting to ~/.local/state.
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, AppName), nil
}
