package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/cards"
	"github.com/abhisek/flashdeck/internal/config"
	"github.com/abhisek/flashdeck/internal/logging"
	"github.com/abhisek/flashdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "flashdeck",
	Short:        "Timed flashcard quiz for the terminal",
	Long:         "Flashdeck quizzes you on question/answer pairs from a CSV file, one card at a time against the clock.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("cards", "", "Path to the flashcard CSV file (default flashcards.csv)")
	pf.String("db", "", "Path to the SQLite history database (overrides FLASHDECK_DB)")
	pf.String("config", "", "Path to a YAML config file")
	pf.Int("time-limit", 0, "Seconds allowed per card")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the layered configuration and builds the file logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: file, Flags: cmd.Flags()})
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}
	return cfg, log, nil
}

// resolveDBPath returns the configured database path, creating its parent
// directory, or the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

func openHistory(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return st, nil
}

// openDeck bootstraps the sample deck on first run. It returns
// cards.ErrRestartRequired when it did.
func openDeck(cfg *config.Config) (*cards.Store, error) {
	deck := cards.NewStore(cfg.Cards)
	created, err := deck.BootstrapIfAbsent()
	if err != nil {
		return nil, err
	}
	if created {
		return deck, cards.ErrRestartRequired
	}
	return deck, nil
}

// isRestart reports whether err is the first-run notice rather than a
// failure.
func isRestart(err error) bool {
	return errors.Is(err, cards.ErrRestartRequired)
}
