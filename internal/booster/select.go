package booster

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderAuto   = ""
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

type Settings struct {
	Provider string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	ClaudeKey       string
	ClaudeModel     string
	ClaudeMaxTokens int64

	GeminiKey   string
	GeminiModel string
}

// ResolveProvider applies auto-detection: the first provider with a key
// wins, in OpenAI, Claude, Gemini order.
func ResolveProvider(s Settings) (string, error) {
	p := strings.ToLower(strings.TrimSpace(s.Provider))
	switch p {
	case ProviderOpenAI, ProviderClaude, ProviderGemini, ProviderNone:
		return p, nil
	case ProviderAuto:
		switch {
		case s.OpenAIKey != "":
			return ProviderOpenAI, nil
		case s.ClaudeKey != "":
			return ProviderClaude, nil
		case s.GeminiKey != "":
			return ProviderGemini, nil
		}
		return ProviderNone, nil
	}
	return "", fmt.Errorf("unsupported booster provider %q (use openai, claude, gemini, or none)", s.Provider)
}

// NewGenerator returns nil with no error when no provider is configured.
func NewGenerator(ctx context.Context, s Settings) (Generator, error) {
	p, err := ResolveProvider(s)
	if err != nil {
		return nil, err
	}
	switch p {
	case ProviderOpenAI:
		if s.OpenAIKey == "" {
			return nil, fmt.Errorf("booster provider openai requires OPENAI_API_KEY")
		}
		return &OpenAI{APIKey: s.OpenAIKey, Model: s.OpenAIModel, BaseURL: s.OpenAIBaseURL}, nil
	case ProviderClaude:
		if s.ClaudeKey == "" {
			return nil, fmt.Errorf("booster provider claude requires ANTHROPIC_API_KEY")
		}
		return NewClaude(s.ClaudeKey, s.ClaudeModel, s.ClaudeMaxTokens), nil
	case ProviderGemini:
		if s.GeminiKey == "" {
			return nil, fmt.Errorf("booster provider gemini requires GOOGLE_API_KEY")
		}
		g, err := NewGemini(ctx, s.GeminiKey, s.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return g, nil
	}
	return nil, nil
}
