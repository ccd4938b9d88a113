package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o"

// OpenAICompleter implements Completer using the OpenAI chat completions API.
type OpenAICompleter struct {
	apiKey string
	model  string
}

// NewOpenAICompleter creates a new OpenAI-backed completer.
func NewOpenAICompleter(apiKey, model string) *OpenAICompleter {
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAICompleter{
		apiKey: apiKey,
		model:  model,
	}
}

// Complete sends the prompt to the chat completions endpoint and returns the
// raw response text.
func (c *OpenAICompleter) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("API key required: set OPENAI_API_KEY or run 'pillars config set-key'")
	}

	client := openai.NewClient(option.WithAPIKey(c.apiKey))

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(prompt.Temperature),
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion via OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from OpenAI API")
	}

	return resp.Choices[0].Message.Content, nil
}
