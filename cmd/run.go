package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/app"
)

// runApp loads the deck, opens the history store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	deck, err := openDeck(cfg)
	if isRestart(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "Created a sample deck at %s. Run flashdeck again to start the quiz.\n", deck.Path())
		return nil
	}
	if err != nil {
		return err
	}

	collection, err := deck.Load()
	if err != nil {
		return err
	}

	opts := app.Options{
		Deck:       deck,
		Collection: collection,
		Quiz:       cfg.Quiz.Controller(),
		Logger:     log,
	}

	// History is optional; the quiz runs without it.
	st, err := openHistory(cfg)
	if err != nil {
		log.Warn("history unavailable", zap.Error(err))
		fmt.Fprintln(cmd.ErrOrStderr(), "History unavailable:", err)
	} else {
		defer st.Close()
		opts.EventRepo = st.EventRepo()
	}

	return app.Run(opts)
}
