package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <question> <answer>",
	Short: "Append a flashcard to the deck",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		deck, err := openDeck(cfg)
		if err != nil && !isRestart(err) {
			return err
		}
		if err := deck.Append(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added to %s\n", deck.Path())
		return nil
	},
}
