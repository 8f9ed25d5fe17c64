package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/AlexJubs/helpcenter/mock"
	hcslog "github.com/AlexJubs/helpcenter/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := hcslog.NewLoggingFetcher(inner, debugLogger(&buf))
		html, err := fetcher.Fetch(context.Background(), "https://www.notion.so/help/reference")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://www.notion.so/help/reference")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := hcslog.NewLoggingFetcher(inner, debugLogger(&buf))
		_, err := fetcher.Fetch(context.Background(), "https://www.notion.so/help/reference")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "<html>", nil },
		}

		fetcher := hcslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := fetcher.Fetch(context.Background(), "https://www.notion.so/help/reference")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := hcslog.NewLoggingFetcher(inner, debugLogger(&buf))
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingPolicy_Allowed(t *testing.T) {
	t.Parallel()

	t.Run("logs disallowed urls", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.URLPolicy{
			AllowedFn: func(context.Context, string) (bool, error) { return false, nil },
		}

		allowed, err := hcslog.NewLoggingPolicy(inner, debugLogger(&buf)).Allowed(context.Background(), "https://example.com/private")

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Contains(t, buf.String(), "url=https://example.com/private")
		assert.Contains(t, buf.String(), "allowed=false")
	})

	t.Run("skips allowed urls", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.URLPolicy{
			AllowedFn: func(context.Context, string) (bool, error) { return true, nil },
		}

		allowed, err := hcslog.NewLoggingPolicy(inner, debugLogger(&buf)).Allowed(context.Background(), "https://example.com/help")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Empty(t, buf.String())
	})
}
