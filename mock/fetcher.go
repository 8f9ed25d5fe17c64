package mock

import (
	"context"

	"github.com/AlexJubs/helpcenter"
)

var _ helpcenter.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of helpcenter.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ helpcenter.URLPolicy = (*URLPolicy)(nil)

// URLPolicy is a mock implementation of helpcenter.URLPolicy.
type URLPolicy struct {
	AllowedFn func(ctx context.Context, url string) (bool, error)
}

func (p *URLPolicy) Allowed(ctx context.Context, url string) (bool, error) {
	return p.AllowedFn(ctx, url)
}

var _ helpcenter.LinkFilter = (*LinkFilter)(nil)

// LinkFilter is a mock implementation of helpcenter.LinkFilter.
type LinkFilter struct {
	SeenFn           func(link string) bool
	EstimatedCountFn func() uint
}

func (f *LinkFilter) Seen(link string) bool {
	return f.SeenFn(link)
}

func (f *LinkFilter) EstimatedCount() uint {
	return f.EstimatedCountFn()
}
