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

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantModel string
		wantErr   bool
	}{
		{
			name:      "default quiz model",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash"},
			wantModel: "google/gemini-2.5-flash",
		},
		{
			name:    "missing API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.5-flash"},
			wantErr: true,
		},
		{
			name:      "vendor-prefixed model passes through unmapped",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-haiku-4.5"},
			wantModel: "anthropic/claude-haiku-4.5",
		},
		{
			name:      "custom base URL",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3.1-8b-instruct", BaseURL: "https://router.example/v1"},
			wantModel: "meta-llama/llama-3.1-8b-instruct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, p.ModelID())
		})
	}
}

func TestOpenRouterProvider_GeneratesQuiz(t *testing.T) {
	var gotPath, gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var body struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel = body.Model

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "gen-test",
			"object": "chat.completion",
			"model":  body.Model,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": "Q: What is ATP?\nA: The cell's energy currency"},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.5-flash",
		BaseURL: server.URL + "/api/v1",
	})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Write one question."}},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/chat/completions", gotPath)
	assert.Equal(t, "google/gemini-2.5-flash", gotModel)
	assert.Equal(t, "Q: What is ATP?\nA: The cell's energy currency", resp.Text())
}
