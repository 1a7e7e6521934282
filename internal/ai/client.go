package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vitalogapp/vitalog-backend/pkg/config"
)

// JournalInsights is the structured payload the insight service returns for
// a journal entry. Only the shape matters here; model behavior is the
// service's concern.
type JournalInsights struct {
	Summary    string   `json:"summary"`
	MoodScore  *float64 `json:"mood_score,omitempty"` // 1-5, absent when the model abstains
	Themes     []string `json:"themes,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Client calls the external insight generation service: a prompt plus a JSON
// schema in, structured JSON out.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

type generateRequest struct {
	Model          string          `json:"model"`
	Prompt         string          `json:"prompt"`
	ResponseSchema json.RawMessage `json:"response_schema"`
}

// insightSchema constrains the service to the JournalInsights shape.
var insightSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"summary":    {"type": "string"},
		"mood_score": {"type": "number", "minimum": 1, "maximum": 5},
		"themes":     {"type": "array", "items": {"type": "string"}},
		"suggestion": {"type": "string"}
	},
	"required": ["summary"]
}`)

// NewClient creates an insight service client from project configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.AI.Timeout},
		baseURL:    cfg.AI.BaseURL,
		apiKey:     cfg.AI.APIKey,
		model:      cfg.AI.Model,
	}
}

// GenerateJournalInsights asks the insight service for a structured analysis
// of a journal entry. Errors are returned for the caller to log; journal
// persistence never depends on this succeeding.
func (c *Client) GenerateJournalInsights(ctx context.Context, content string) (*JournalInsights, error) {
	prompt := fmt.Sprintf(
		"Analyze this journal entry. Summarize it in one sentence, rate the writer's mood from 1 (low) to 5 (high), list up to three themes, and offer one gentle suggestion.\n\nEntry:\n%s",
		content,
	)

	body, err := json.Marshal(generateRequest{
		Model:          c.model,
		Prompt:         prompt,
		ResponseSchema: insightSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build insight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logrus.WithFields(logrus.Fields{
		"model":       c.model,
		"content_len": len(content),
	}).Debug("Requesting journal insights")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insight service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("insight service returned %d: %s", resp.StatusCode, string(payload))
	}

	var insights JournalInsights
	if err := json.NewDecoder(resp.Body).Decode(&insights); err != nil {
		return nil, fmt.Errorf("failed to decode insight response: %w", err)
	}

	return &insights, nil
}
