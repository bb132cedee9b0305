package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/llm"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		stats, err := repo.Stats(ctx)
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sessions:      %d\n", stats.Sessions)
		fmt.Fprintf(out, "Rounds:        %d (%.0f%% correct)\n", stats.Rounds, stats.Accuracy()*100)
		fmt.Fprintf(out, "  correct      %d\n", stats.Correct)
		fmt.Fprintf(out, "  wrong        %d\n", stats.Wrong)
		fmt.Fprintf(out, "  timed out    %d\n", stats.Timeouts)
		fmt.Fprintf(out, "  skipped      %d\n", stats.Skipped)
		fmt.Fprintf(out, "Hints used:    %d\n", stats.HintsUsed)
		fmt.Fprintf(out, "Avg answer:    %.1fs\n", stats.AvgElapsed.Seconds())
		fmt.Fprintf(out, "Quizzes done:  %d (best score %d, best streak %d)\n", stats.Cycles, stats.BestScore, stats.BestStreak)

		if len(stats.Missed) > 0 {
			fmt.Fprintln(out, "\nMost missed:")
			for _, m := range stats.Missed {
				fmt.Fprintf(out, "  %dx  %s → %s\n", m.Misses, truncate(m.Question, 50), m.Answer)
			}
		}

		usage, err := repo.LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("query LLM usage: %w", err)
		}
		if len(usage) == 0 {
			return nil
		}

		fmt.Fprintln(out, "\nCard generation:")
		var total float64
		for _, u := range usage {
			line := fmt.Sprintf("  %-32s  %3d requests (%d failed)  %d in / %d out tokens",
				truncate(u.Model, 32), u.Requests, u.Failures, u.InputTokens, u.OutputTokens)
			if price, ok := llm.LookupCost(u.Model); ok {
				cost := price.Cost(u.InputTokens, u.OutputTokens)
				total += cost
				line += fmt.Sprintf("  $%.4f", cost)
			}
			fmt.Fprintln(out, line)
		}
		if total > 0 {
			fmt.Fprintf(out, "  Estimated cost: $%.4f\n", total)
		}
		return nil
	},
}
