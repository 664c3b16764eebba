package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	perplexityURL   = "https://api.perplexity.ai/chat/completions"
	perplexityModel = "llama-3.1-sonar-small-128k-online"
)

// Perplexity is an optional second provider with live web search, used to
// look up video resources with working links. When no API key is configured
// the client reports itself unavailable and callers fall back to Gemini.
type Perplexity struct {
	apiKey     string
	httpClient *http.Client
}

func NewPerplexity(apiKey string) *Perplexity {
	return &Perplexity{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *Perplexity) Available() bool {
	return p.apiKey != ""
}

type perplexityRequest struct {
	Model       string              `json:"model"`
	Messages    []perplexityMessage `json:"messages"`
	Temperature float32             `json:"temperature"`
	MaxTokens   int32               `json:"max_tokens"`
}

type perplexityMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type perplexityResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends a single-message chat completion and returns the response
// text.
func (p *Perplexity) Generate(ctx context.Context, promptText string, maxTokens int32) (string, error) {
	if !p.Available() {
		return "", fmt.Errorf("perplexity API key not configured")
	}

	body, err := json.Marshal(perplexityRequest{
		Model:       perplexityModel,
		Messages:    []perplexityMessage{{Role: "user", Content: promptText}},
		Temperature: 0.3,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal perplexity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, perplexityURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create perplexity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("perplexity request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read perplexity response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("perplexity returned status %d: %s", resp.StatusCode, respBody)
	}

	var parsed perplexityResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode perplexity response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("perplexity returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
