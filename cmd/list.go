package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the flashcards in the deck",
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
		collection, err := deck.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(collection) == 0 {
			fmt.Fprintln(out, "No flashcards yet.")
			return nil
		}

		fmt.Fprintf(out, "%4s  %-50s  %s\n", "#", "Question", "Answer")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for i, c := range collection {
			fmt.Fprintf(out, "%4d  %-50s  %s\n", i+1, truncate(c.Question, 50), c.Answer)
		}
		fmt.Fprintf(out, "\n%d cards\n", len(collection))
		return nil
	},
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
