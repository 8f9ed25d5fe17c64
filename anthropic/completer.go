// Package anthropic implements helpcenter.Completer with the Anthropic
// Messages API.
package anthropic

import (
	"context"

	"github.com/AlexJubs/helpcenter"
	"github.com/anthropics/anthropic-sdk-go"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-3-5-haiku-latest"

	// MaxTokens caps the length of each completion.
	MaxTokens = 4096
)

// Ensure Completer implements helpcenter.Completer at compile time.
var _ helpcenter.Completer = (*Completer)(nil)

// Completer sends single-turn prompts to Anthropic.
type Completer struct {
	client anthropic.Client
	model  string
}

// NewCompleter creates a Completer. An empty model selects DefaultModel.
func NewCompleter(client anthropic.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends prompt as one user message and returns the text of the
// first text block in the reply.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", helpcenter.Errorf(helpcenter.EUNAVAILABLE, "Error invoking Anthropic API: %v", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", helpcenter.Errorf(helpcenter.EINTERNAL, "anthropic returned no text content")
}
