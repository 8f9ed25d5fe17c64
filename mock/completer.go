package mock

import (
	"context"

	"github.com/AlexJubs/helpcenter"
)

var _ helpcenter.Completer = (*Completer)(nil)

// Completer is a mock implementation of helpcenter.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteFn(ctx, prompt)
}

var _ helpcenter.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of helpcenter.Normalizer.
type Normalizer struct {
	SectionFn  func(ctx context.Context, link, markup, fallbackHTML string) (*helpcenter.Content, error)
	PrettifyFn func(ctx context.Context, title, content string) (string, error)
}

func (n *Normalizer) Section(ctx context.Context, link, markup, fallbackHTML string) (*helpcenter.Content, error) {
	return n.SectionFn(ctx, link, markup, fallbackHTML)
}

func (n *Normalizer) Prettify(ctx context.Context, title, content string) (string, error) {
	return n.PrettifyFn(ctx, title, content)
}

var _ helpcenter.Prompter = (*Prompter)(nil)

// Prompter is a mock implementation of helpcenter.Prompter.
type Prompter struct {
	ConfirmFn func(question string) (bool, error)
}

func (p *Prompter) Confirm(question string) (bool, error) {
	return p.ConfirmFn(question)
}
