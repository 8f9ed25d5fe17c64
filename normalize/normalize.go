// Package normalize turns raw article regions into sectioned and polished
// text with a Completer, falling back to manual extraction when the model
// is unavailable.
package normalize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AlexJubs/helpcenter"
)

// Ensure Normalizer implements helpcenter.Normalizer at compile time.
var _ helpcenter.Normalizer = (*Normalizer)(nil)

// Normalizer implements helpcenter.Normalizer.
type Normalizer struct {
	completer helpcenter.Completer
	fallback  helpcenter.FallbackExtractor
	logger    *slog.Logger
}

// NewNormalizer creates a Normalizer. A nil logger discards log output.
func NewNormalizer(completer helpcenter.Completer, fallback helpcenter.FallbackExtractor, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Normalizer{completer: completer, fallback: fallback, logger: logger}
}

// Section asks the model to split markup into sections. When the model
// fails or answers with blank text, the fallback extractor runs over
// fallbackHTML instead.
func (n *Normalizer) Section(ctx context.Context, link, markup, fallbackHTML string) (*helpcenter.Content, error) {
	text, err := n.complete(ctx, SectionPrompt(link, markup))
	if err == nil {
		return &helpcenter.Content{Text: text, Source: helpcenter.SourceLLM}, nil
	}

	n.logger.Warn("sectioning failed, using fallback extraction",
		"link", link,
		"error", helpcenter.ErrorMessage(err),
	)

	text, ferr := n.fallback.Extract(fallbackHTML)
	if ferr != nil {
		return nil, ferr
	}
	return &helpcenter.Content{Text: text, Source: helpcenter.SourceFallback}, nil
}

// Prettify asks the model to rewrite content as polished documentation.
func (n *Normalizer) Prettify(ctx context.Context, title, content string) (string, error) {
	return n.complete(ctx, PrettifyPrompt(title, content))
}

// complete treats an error and a blank completion alike.
func (n *Normalizer) complete(ctx context.Context, prompt string) (string, error) {
	text, err := n.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", helpcenter.Errorf(helpcenter.EUNAVAILABLE, "empty completion")
	}
	return text, nil
}

// SectionPrompt builds the prompt that groups an article region into
// sections of roughly 750 characters.
func SectionPrompt(link, markup string) string {
	var sb strings.Builder
	sb.WriteString("Please extract and organize the content from this article into coherent sections.\n")
	sb.WriteString("Follow these guidelines:\n")
	sb.WriteString("1. Keep headings with their associated paragraphs\n")
	sb.WriteString("2. Keep bulleted/numbered lists intact - do not split them\n")
	sb.WriteString("3. Each section should be approximately 750 characters, but can exceed this if needed to preserve context\n")
	sb.WriteString("4. Maintain the hierarchical structure and relationships between elements\n")
	sb.WriteString("5. Preserve any code blocks, tables, or special formatting as complete units\n")
	sb.WriteString("6. Return the content as an array of logically grouped text sections. Nothing else, no text, just the array.\n")
	fmt.Fprintf(&sb, "7. The topic of the article is: %s\n", link)
	sb.WriteString("Here is the content:\n")
	sb.WriteString(markup)
	return sb.String()
}

// PrettifyPrompt builds the technical writer prompt for an article.
func PrettifyPrompt(title, content string) string {
	var sb strings.Builder
	sb.WriteString("You are a technical writer helping to format and structure help documentation.\n")
	fmt.Fprintf(&sb, "I will provide you with content from a help article titled '%s'.\n", title)
	sb.WriteString("The content consists of paragraphs and list items. ")
	sb.WriteString("Please format this content to be clear, concise and well-structured while preserving the key information.\n\n")
	sb.WriteString("Here is the content:\n")
	sb.WriteString(content)
	sb.WriteString("\n\nPlease rewrite this content to be more polished and professional while maintaining accuracy.")
	return sb.String()
}
