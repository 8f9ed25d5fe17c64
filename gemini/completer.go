// Package gemini implements helpcenter.Completer with Google Gemini.
package gemini

import (
	"context"

	"github.com/AlexJubs/helpcenter"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements helpcenter.Completer at compile time.
var _ helpcenter.Completer = (*Completer)(nil)

// Completer sends single-turn prompts to Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends prompt as one user turn with default generation settings.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", helpcenter.Errorf(helpcenter.EUNAVAILABLE, "Error invoking Gemini API: client not configured")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		}},
		nil,
	)
	if err != nil {
		return "", helpcenter.Errorf(helpcenter.EUNAVAILABLE, "Error invoking Gemini API: %v", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", helpcenter.Errorf(helpcenter.EINTERNAL, "gemini returned no candidates")
	}

	return result.Text(), nil
}
