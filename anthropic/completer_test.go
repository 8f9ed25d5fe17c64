package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexJubs/helpcenter"
	hcanthropic "github.com/AlexJubs/helpcenter/anthropic"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func newClient(t *testing.T, handler http.HandlerFunc) anthropic.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
}

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("returns first text block", func(t *testing.T) {
		t.Parallel()

		requests := make(chan messageRequest, 1)
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req messageRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			requests <- req
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "msg_1",
				"type": "message",
				"role": "assistant",
				"model": "claude-3-5-haiku-latest",
				"content": [{"type": "text", "text": "sectioned"}],
				"stop_reason": "end_turn",
				"usage": {"input_tokens": 3, "output_tokens": 1}
			}`))
		})

		text, err := hcanthropic.NewCompleter(client, "").Complete(context.Background(), "Split this article")

		require.NoError(t, err)
		assert.Equal(t, "sectioned", text)

		req := <-requests
		assert.Equal(t, hcanthropic.DefaultModel, req.Model)
		assert.Equal(t, hcanthropic.MaxTokens, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		require.Len(t, req.Messages[0].Content, 1)
		assert.Equal(t, "Split this article", req.Messages[0].Content[0].Text)
	})

	t.Run("returns EUNAVAILABLE on API error", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad model"}}`))
		})

		_, err := hcanthropic.NewCompleter(client, "nope").Complete(context.Background(), "hi")

		require.Error(t, err)
		assert.Equal(t, helpcenter.EUNAVAILABLE, helpcenter.ErrorCode(err))
		assert.Contains(t, helpcenter.ErrorMessage(err), "Error invoking Anthropic API")
	})

	t.Run("returns EINTERNAL without text content", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest","content":[],"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":0}}`))
		})

		_, err := hcanthropic.NewCompleter(client, "").Complete(context.Background(), "hi")

		require.Error(t, err)
		assert.Equal(t, helpcenter.EINTERNAL, helpcenter.ErrorCode(err))
	})
}
