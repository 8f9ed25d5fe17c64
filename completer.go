package helpcenter

import "context"

// Completer sends single-turn prompts to a hosted text-generation model.
type Completer interface {
	// Complete sends prompt as a single user message and returns the text
	// of the first completion. Transport and API failures are returned as
	// EUNAVAILABLE errors.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Normalizer reorganizes article content with a Completer.
type Normalizer interface {
	// Section splits an article's content region into text sections.
	// The markup is sent to the model; fallbackHTML is the raw region used
	// by the fallback extractor when the model fails.
	Section(ctx context.Context, link, markup, fallbackHTML string) (*Content, error)

	// Prettify rewrites content into polished prose.
	// Returns an error when the model fails or returns no text.
	Prettify(ctx context.Context, title, content string) (string, error)
}

// Prompter asks the user yes/no questions.
type Prompter interface {
	Confirm(question string) (bool, error)
}
