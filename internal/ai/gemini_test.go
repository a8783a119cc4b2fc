package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/equiflow/internal/config"
)

func testClient(baseURL, apiKey string) *GeminiClient {
	return NewGeminiClient(config.AIConfig{
		APIKey:  apiKey,
		Model:   "test-model",
		BaseURL: baseURL,
	}, zap.NewNop())
}

func TestRecommendParsesSuggestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)

		resp := generateResponse{}
		resp.Candidates = []struct {
			Content content `json:"content"`
		}{{Content: content{Parts: []part{{Text: `["it2","it1"]`}}}}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	ids := testClient(server.URL, "key").Recommend(context.Background(), "film a product demo", []InventoryEntry{
		{ID: "it1", Name: "Camera"},
		{ID: "it2", Name: "Tripod"},
	})
	assert.Equal(t, []string{"it2", "it1"}, ids)
}

func TestRecommendFailuresYieldEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "unparseable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
		},
		{
			name: "candidate text is not a string array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"no ids here"}]}}]}`))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			ids := testClient(server.URL, "key").Recommend(context.Background(), "task", nil)
			assert.Empty(t, ids)
		})
	}
}

func TestRecommendDisabledWithoutAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without an API key")
	}))
	defer server.Close()

	ids := testClient(server.URL, "").Recommend(context.Background(), "task", nil)
	assert.Empty(t, ids)
}
