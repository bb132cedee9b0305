package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/config"
	"github.com/abhisek/flashdeck/internal/deckgen"
	"github.com/abhisek/flashdeck/internal/llm"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft new flashcards on a topic with an LLM",
	Long: `Ask a language model for flashcards on a topic and append them to the deck.

The provider comes from llm.provider, FLASHDECK_LLM_PROVIDER, or the first of
GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY and OPENROUTER_API_KEY that is set.
Cards whose question is already in the deck are dropped.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic to draft cards about (required)")
	generateCmd.Flags().Int("count", 10, "Number of cards to draft")
	generateCmd.Flags().Bool("dry-run", false, "Print the drafts without appending them")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	deck, err := openDeck(cfg)
	if err != nil && !isRestart(err) {
		return err
	}
	existing, err := deck.Load()
	if err != nil {
		return err
	}

	// Requests are recorded when the history store is available.
	var sink llm.EventSink
	if st, err := openHistory(cfg); err != nil {
		log.Warn("LLM requests will not be recorded", zap.Error(err))
	} else {
		defer st.Close()
		sink = st.EventRepo()
	}

	llmCfg := providerConfig(cfg)
	ctx, cancel := context.WithTimeout(cmd.Context(), llmCfg.Timeout)
	defer cancel()

	provider, err := llm.NewProvider(ctx, llmCfg, sink, log)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Drafting %d cards on %q with %s...\n\n", count, topic, provider.ModelID())

	gen := deckgen.New(provider, deckgen.DefaultConfig(), deckgen.WithLogger(log))
	drafts, err := gen.Generate(ctx, deckgen.Input{Topic: topic, Count: count, Existing: existing})
	if err != nil {
		return fmt.Errorf("generate cards: %w", err)
	}

	for i, c := range drafts {
		fmt.Fprintf(out, "%3d. %s\n     → %s\n", i+1, c.Question, c.Answer)
	}
	fmt.Fprintln(out)

	if dryRun {
		fmt.Fprintf(out, "%d cards drafted (dry run, deck unchanged)\n", len(drafts))
		return nil
	}
	for _, c := range drafts {
		if err := deck.Append(c.Question, c.Answer); err != nil {
			return fmt.Errorf("append card: %w", err)
		}
	}
	fmt.Fprintf(out, "%d cards added to %s\n", len(drafts), deck.Path())
	return nil
}

// providerConfig layers the config file's llm section over the
// environment.
func providerConfig(cfg *config.Config) llm.Config {
	llmCfg := llm.ConfigFromEnv(nil)
	if cfg.LLM.Provider != "" {
		llmCfg.Provider = cfg.LLM.Provider
	}
	llmCfg = llmCfg.WithModel(cfg.LLM.Model)
	llmCfg.Timeout = cfg.LLM.Timeout
	return llmCfg
}
