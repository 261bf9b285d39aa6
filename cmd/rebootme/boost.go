package rebootme

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/booster"
	"github.com/disneysandhya1/RebootMe-Backend/internal/observability"
)

// newBooster is swapped in tests to avoid remote calls.
var newBooster = func(ctx context.Context) (*booster.Booster, error) {
	gen, err := booster.NewGenerator(ctx, booster.Settings{
		Provider:        cfg.Booster.Provider,
		OpenAIKey:       cfg.OpenAI.APIKey,
		OpenAIModel:     cfg.OpenAI.Model,
		OpenAIBaseURL:   cfg.OpenAI.BaseURL,
		ClaudeKey:       cfg.Claude.APIKey,
		ClaudeModel:     cfg.Claude.Model,
		ClaudeMaxTokens: cfg.Claude.MaxTokens,
		GeminiKey:       cfg.Gemini.APIKey,
		GeminiModel:     cfg.Gemini.Model,
	})
	if err != nil {
		return nil, err
	}
	return booster.New(gen, booster.WithTimeout(cfg.Booster.Timeout)), nil
}

func fetchQuote(ctx context.Context) (booster.Quote, error) {
	b, err := newBooster(ctx)
	if err != nil {
		return booster.Quote{}, err
	}
	q := b.Quote(ctx)
	if q.Err != nil {
		observability.LoggerFromContext(ctx).Warn("booster fell back to canned quote", "err", q.Err)
	}
	return q, nil
}

var boostCmd = &cobra.Command{
	Use:   "boost",
	Short: "Show a daily mood booster quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := fetchQuote(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✨ %s\n", q.Text)
		fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", q.Source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boostCmd)
}
