package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	cfg.MaxRetries = 0
	return cfg
}

func TestChatClient_Complete(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(chatResponse{
			Model: "test-model",
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "hello back"}},
			},
		})
	}))
	defer server.Close()

	client := NewChatClient(testConfig(server.URL), nil)
	resp, err := client.Complete(context.Background(), CompleteRequest{
		Task:         TaskCoach,
		SystemPrompt: "be brief",
		UserPrompt:   "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello back", resp.Text)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
}

func TestChatClient_RetriesThenFails(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxRetries = 2

	client := NewChatClient(cfg, nil)
	_, err := client.Complete(context.Background(), CompleteRequest{Task: TaskCoach, UserPrompt: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 3, calls)
}

func TestChatClient_UnreachableEndpoint(t *testing.T) {
	// Bind-then-close gives an address nothing is listening on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewChatClient(testConfig(url), nil)
	_, err := client.Complete(context.Background(), CompleteRequest{Task: TaskCoach, UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChatClient_Available(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/models" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewChatClient(testConfig(server.URL), nil)
	assert.True(t, client.Available(context.Background()))

	server.Close()
	assert.False(t, client.Available(context.Background()))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Endpoint)

	// Per-task timeouts override the global one.
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskCallReview))
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("unknown")))
}
