package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const completionMaxTokens = 4096

// AnthropicCompleter implements Completer using the Anthropic Messages API.
type AnthropicCompleter struct {
	apiKey string
	model  anthropic.Model
}

// NewAnthropicCompleter creates a new Anthropic-backed completer.
func NewAnthropicCompleter(apiKey, model string) *AnthropicCompleter {
	resolved := anthropic.ModelClaudeSonnet4_5_20250929
	if model != "" {
		resolved = anthropic.Model(model)
	}

	return &AnthropicCompleter{
		apiKey: apiKey,
		model:  resolved,
	}
}

// Complete sends the prompt to the Messages API and returns the raw response
// text.
func (c *AnthropicCompleter) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("API key required: set ANTHROPIC_API_KEY or run 'pillars config set-key'")
	}

	client := anthropic.NewClient(option.WithAPIKey(c.apiKey))

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: completionMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: prompt.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)),
		},
		Temperature: anthropic.Float(prompt.Temperature),
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion via Anthropic API: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", errors.New("empty response from Anthropic API")
	}

	textBlock, ok := resp.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", errors.New("unexpected response type from Anthropic API")
	}

	return textBlock.Text, nil
}
