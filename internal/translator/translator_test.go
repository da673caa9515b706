package translator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	assert.Equal(t,
		"Translate the following text into Spanish: Buy milk (Priority: High)",
		Prompt("Buy milk (Priority: High)", "Spanish"),
	)
}

func TestNew_NoAPIKeyIsUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	tr, err := New(context.Background(), config.Translator{Provider: config.ProviderOpenAI, BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, tr.Enabled())

	_, err = tr.Translate(context.Background(), "Buy milk", "French")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Zero(t, calls.Load(), "no network activity without a key")
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), config.Translator{Provider: "deepl", APIKey: "k"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func newFakeOpenAI(t *testing.T, status int, reply string, gotPrompt *string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.Unmarshal(body, &req)
		if gotPrompt != nil && len(req.Messages) > 0 {
			*gotPrompt = req.Messages[0].Content
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"model":   req.Model,
			"choices": []map[string]any{{"index": 0, "message": map[string]string{"role": "assistant", "content": reply}}},
		})
	}))
}

func TestOpenAITranslator_Success(t *testing.T) {
	var prompt string
	srv := newFakeOpenAI(t, http.StatusOK, "  Acheter du lait \n", &prompt)
	defer srv.Close()

	tr, err := New(context.Background(), config.Translator{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  srv.URL,
	}, logger.Nop())
	require.NoError(t, err)
	assert.True(t, tr.Enabled())

	got, err := tr.Translate(context.Background(), "Buy milk", "French")
	require.NoError(t, err)
	assert.Equal(t, "Acheter du lait", got)
	assert.Equal(t, "Translate the following text into French: Buy milk", prompt)
}

func TestOpenAITranslator_ProviderError(t *testing.T) {
	srv := newFakeOpenAI(t, http.StatusTooManyRequests, "", nil)
	defer srv.Close()

	tr := newOpenAITranslator(config.Translator{APIKey: "test-key", BaseURL: srv.URL})

	_, err := tr.Translate(context.Background(), "Buy milk", "German")
	assert.ErrorIs(t, err, ErrTranslation)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestOpenAITranslator_EmptyResponse(t *testing.T) {
	srv := newFakeOpenAI(t, http.StatusOK, "   ", nil)
	defer srv.Close()

	tr := newOpenAITranslator(config.Translator{APIKey: "test-key", BaseURL: srv.URL})

	_, err := tr.Translate(context.Background(), "Buy milk", "German")
	assert.ErrorIs(t, err, ErrTranslation)
	assert.ErrorIs(t, err, errEmptyResponse)
}

func TestGeminiTranslator_Success(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Comprar leche"}]}}]}`))
	}))
	defer srv.Close()

	tr, err := New(context.Background(), config.Translator{
		Provider: config.ProviderGemini,
		APIKey:   "test-key",
		BaseURL:  srv.URL + "/",
	}, logger.Nop())
	require.NoError(t, err)

	got, err := tr.Translate(context.Background(), "Buy milk", "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "Comprar leche", got)
	assert.Contains(t, path, config.DefaultGeminiModel)
}

func TestGeminiTranslator_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend error","status":"INTERNAL"}}`))
	}))
	defer srv.Close()

	tr, err := newGeminiTranslator(context.Background(), config.Translator{APIKey: "test-key", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), "Buy milk", "Spanish")
	assert.ErrorIs(t, err, ErrTranslation)
}
