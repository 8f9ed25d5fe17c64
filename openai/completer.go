// Package openai implements helpcenter.Completer with the OpenAI Chat
// Completions API.
package openai

import (
	"context"

	"github.com/AlexJubs/helpcenter"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-3.5-turbo"

// Ensure Completer implements helpcenter.Completer at compile time.
var _ helpcenter.Completer = (*Completer)(nil)

// Completer sends single-turn prompts to OpenAI.
type Completer struct {
	client openai.Client
	model  string
}

// NewCompleter creates a Completer. An empty model selects DefaultModel.
func NewCompleter(client openai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends prompt as one user message and returns the first choice.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", helpcenter.Errorf(helpcenter.EUNAVAILABLE, "Error invoking OpenAI API: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", helpcenter.Errorf(helpcenter.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
