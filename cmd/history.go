package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rounds and finished quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		st, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()
		rounds, err := repo.QueryRoundEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}
		cycles, err := repo.QueryCycleEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query cycles: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(rounds) == 0 && len(cycles) == 0 {
			fmt.Fprintln(out, "No history yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-8s  %-40s  %-20s  %s\n", "Timestamp", "Outcome", "Question", "Answer", "Given")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, r := range rounds {
			given := r.Given
			if r.HintUsed {
				given += " (hint)"
			}
			fmt.Fprintf(out, "%-19s  %-8s  %-40s  %-20s  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Outcome,
				truncate(r.Question, 40),
				truncate(r.Answer, 20),
				given,
			)
		}

		if len(cycles) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Finished quizzes:")
			for _, c := range cycles {
				fmt.Fprintf(out, "  %s  score %d/%d  streak %d\n",
					c.Timestamp.Local().Format("2006-01-02 15:04:05"), c.Score, c.Total, c.Streak)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of rounds to show")
}
