package translator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqx_news/internal/config"
	"dqx_news/internal/domain"
)

func newTestClient(baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(config.TranslatorConfig{
		APIKey:      "test-key",
		Model:       "test-model",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Temperature: 0.3,
	}, logger)
}

func chatReply(content string) []byte {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(reply)
	return data
}

func TestTranslate_TitleAndContent(t *testing.T) {
	var requests []chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		if len(requests) == 1 {
			_, _ = w.Write(chatReply("Major Update Information"))
		} else {
			_, _ = w.Write(chatReply("The update adds a new area."))
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	result, err := client.Translate(context.Background(),
		"大型アップデート情報", "新エリアが追加されます。", "en", nil)
	require.NoError(t, err)

	assert.Equal(t, "Major Update Information", result.Title)
	assert.Equal(t, "The update adds a new area.", result.Content)
	require.Len(t, requests, 2)
	assert.Equal(t, "test-model", requests[0].Model)
}

func TestTranslate_GlossaryHintsInPrompt(t *testing.T) {
	var systemContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		systemContent = req.Messages[0].Content
		_, _ = w.Write(chatReply("ok"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	hints := []domain.GlossaryEntry{
		{SourceText: "アストルティア", TranslatedText: "Astoltia", Lang: "en"},
	}
	_, err := client.Translate(context.Background(), "テスト", "本文", "en", hints)
	require.NoError(t, err)

	assert.Contains(t, systemContent, "アストルティア => Astoltia")
}

func TestTranslate_EmptyContentSkipsBackend(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write(chatReply("Title Only"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	result, err := client.Translate(context.Background(), "タイトル", "", "en", nil)
	require.NoError(t, err)

	assert.Equal(t, "Title Only", result.Title)
	assert.Equal(t, "", result.Content)
	assert.Equal(t, 1, calls)
}

func TestTranslate_BackendErrorIsTranslationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Translate(context.Background(), "タイトル", "本文", "en", nil)
	require.Error(t, err)

	var trErr *domain.TranslationError
	assert.True(t, errors.As(err, &trErr))
	assert.Equal(t, "en", trErr.Lang)
}
