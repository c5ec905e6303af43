package gpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fitness-bot/internal/config"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.OpenAI{
		APIKey:        "sk-test",
		BaseURL:       srv.URL + "/v1",
		Model:         "gpt-4o-mini",
		MaxTokens:     100,
		Temperature:   0.7,
		MaxConcurrent: 1,
	})
}

func writeCompletion(w http.ResponseWriter, content string) {
	resp := openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{}}
	if content != "" {
		resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func TestComplete_OK(t *testing.T) {
	var got openai.ChatCompletionRequest
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeCompletion(w, "  План на тиждень  ")
	})

	text, err := c.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "План на тиждень", text)

	require.Equal(t, "gpt-4o-mini", got.Model)
	require.Equal(t, 100, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	require.Equal(t, "prompt", got.Messages[1].Content)
}

func TestComplete_NoChoices(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "")
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestComplete_APIError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
}

func TestComplete_SerializesCalls(t *testing.T) {
	var inFlight, maxSeen int32
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			m := atomic.LoadInt32(&maxSeen)
			if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		writeCompletion(w, "ok")
	})

	done := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func() {
			_, err := c.Complete(context.Background(), "p")
			done <- err
		}()
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, <-done)
	}
	require.EqualValues(t, 1, atomic.LoadInt32(&maxSeen))
}

func TestComplete_CanceledWhileWaiting(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "ok")
	})
	c.sem <- struct{}{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Complete(ctx, "p")
	require.ErrorIs(t, err, context.Canceled)
}
