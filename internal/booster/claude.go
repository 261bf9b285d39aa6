package booster

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultClaudeModel = "claude-sonnet-4-5-20250929"

type Claude struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func NewClaude(apiKey, model string, maxTokens int64) *Claude {
	if model == "" {
		model = DefaultClaudeModel
	}
	if maxTokens <= 0 {
		maxTokens = 256
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Claude{
		client:    &client,
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

func (c *Claude) Name() string { return "claude" }

func (c *Claude) Generate(ctx context.Context) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}
	return b.String(), nil
}
