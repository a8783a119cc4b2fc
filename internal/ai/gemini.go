// Package ai wraps the generative-AI recommendation call. The call is
// fire-and-await: no retry, no batching, and every failure degrades to an
// empty suggestion list instead of an error.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/equiflow/internal/config"
)

// InventoryEntry is the id/name pair sent to the model.
type InventoryEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Recommender suggests item ids for a free-text task description.
type Recommender interface {
	Recommend(ctx context.Context, taskDescription string, inventory []InventoryEntry) []string
}

// GeminiClient calls the Gemini generateContent endpoint.
type GeminiClient struct {
	cfg    config.AIConfig
	client *http.Client
	logger *zap.Logger
}

// NewGeminiClient constructs the client. With no API key configured every
// call returns an empty list.
func NewGeminiClient(cfg config.AIConfig, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{cfg: cfg, client: &http.Client{}, logger: logger}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Recommend asks the model for the most appropriate item ids. Any transport
// or decode failure yields an empty list.
func (g *GeminiClient) Recommend(ctx context.Context, taskDescription string, inventory []InventoryEntry) []string {
	if g.cfg.APIKey == "" {
		return nil
	}

	catalog, err := json.Marshal(inventory)
	if err != nil {
		g.logger.Warn("recommendation request failed", zap.Error(err))
		return nil
	}

	prompt := fmt.Sprintf(
		"Based on the following user task: %q, suggest the most appropriate equipment from this inventory: %s. Return only the IDs of suggested items as a JSON array of strings.",
		taskDescription, catalog)

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		g.logger.Warn("recommendation request failed", zap.Error(err))
		return nil
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(g.cfg.BaseURL, "/"), g.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		g.logger.Warn("recommendation request failed", zap.Error(err))
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("recommendation request failed", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("recommendation request rejected", zap.Int("status", resp.StatusCode))
		return nil
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		g.logger.Warn("recommendation response unparseable", zap.Error(err))
		return nil
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(decoded.Candidates[0].Content.Parts[0].Text), &ids); err != nil {
		g.logger.Warn("recommendation response unparseable", zap.Error(err))
		return nil
	}
	return ids
}
