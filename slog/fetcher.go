// Package slog provides logging decorators for helpcenter interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/AlexJubs/helpcenter"
)

// Ensure LoggingFetcher implements helpcenter.Fetcher.
var _ helpcenter.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   helpcenter.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next helpcenter.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingPolicy implements helpcenter.URLPolicy.
var _ helpcenter.URLPolicy = (*LoggingPolicy)(nil)

// LoggingPolicy wraps a URLPolicy and logs every disallowed URL.
type LoggingPolicy struct {
	next   helpcenter.URLPolicy
	logger *slog.Logger
}

// NewLoggingPolicy creates a new LoggingPolicy.
func NewLoggingPolicy(next helpcenter.URLPolicy, logger *slog.Logger) *LoggingPolicy {
	return &LoggingPolicy{next: next, logger: logger}
}

// Allowed delegates to the wrapped policy.
func (p *LoggingPolicy) Allowed(ctx context.Context, url string) (allowed bool, err error) {
	defer func() {
		if err != nil || !allowed {
			p.logger.Info("robots check",
				"url", url,
				"allowed", allowed,
				"err", err,
			)
		}
	}()
	return p.next.Allowed(ctx, url)
}
