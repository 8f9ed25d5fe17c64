package helpcenter

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the URL and returns its HTML.
	// Non-success responses are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// URLPolicy decides whether a URL may be crawled.
type URLPolicy interface {
	// Allowed reports whether the URL may be fetched.
	Allowed(ctx context.Context, url string) (bool, error)
}

// LinkFilter tracks article links already discovered during a run.
type LinkFilter interface {
	// Seen records the link and reports whether it was recorded before.
	Seen(link string) bool

	// EstimatedCount returns the approximate number of links recorded.
	EstimatedCount() uint
}
