package ai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/service/ai"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	MaxTokens *int64 `json:"max_tokens"`
}

func newChatServer(t *testing.T, reply string, seen *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, seen))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   seen.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewProvider_Validation(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "k"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)

	_, err = ai.NewProvider(ai.Config{Provider: "bogus", APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)

	p, err := ai.NewProvider(ai.Config{Provider: ai.ProviderAnthropic, APIKey: "k", Model: "m"})
	require.NoError(t, err)
	require.Equal(t, ai.ProviderAnthropic, p.Name())
}

func TestCompatibleProvider_CompleteJSON(t *testing.T) {
	var seen chatRequest
	srv := newChatServer(t, `{"content":"ok"}`, &seen)

	p, err := ai.NewProvider(ai.Config{
		Provider: ai.ProviderCompatible,
		APIKey:   "test-key",
		BaseURL:  srv.URL,
		Model:    "deepseek-chat",
	})
	require.NoError(t, err)

	text, err := p.CompleteJSON(context.Background(), ai.SummaryPrompt, "Original: a | JP: b | EN: c")
	require.NoError(t, err)
	require.Equal(t, `{"content":"ok"}`, text)

	require.Equal(t, "deepseek-chat", seen.Model)
	require.Len(t, seen.Messages, 2)
	require.Equal(t, "system", seen.Messages[0].Role)
	require.Equal(t, ai.SummaryPrompt, seen.Messages[0].Content)
	require.Equal(t, "user", seen.Messages[1].Role)
	require.NotNil(t, seen.ResponseFormat)
	require.Equal(t, "json_object", seen.ResponseFormat.Type)
}

func TestOpenAIProvider_CompleteHasNoResponseFormat(t *testing.T) {
	var seen chatRequest
	srv := newChatServer(t, "plain", &seen)

	p, err := ai.NewOpenAIProvider("test-key", srv.URL, "gpt-4o-mini")
	require.NoError(t, err)

	text, err := p.Complete(context.Background(), "", "hi")
	require.NoError(t, err)
	require.Equal(t, "plain", text)
	require.Len(t, seen.Messages, 1)
	require.Nil(t, seen.ResponseFormat)
}

func TestChatProvider_Test(t *testing.T) {
	var seen chatRequest
	srv := newChatServer(t, "ok", &seen)

	p, err := ai.NewCompatibleProvider("test-key", srv.URL, "deepseek-chat")
	require.NoError(t, err)
	require.Equal(t, ai.ProviderCompatible, p.Name())

	reply, err := p.Test(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", reply)
	require.Len(t, seen.Messages, 1)
	require.NotNil(t, seen.MaxTokens)
	require.Equal(t, int64(16), *seen.MaxTokens)
}
