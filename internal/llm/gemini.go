// Package llm wraps the external text-generation providers behind a small
// interface so services and tests can substitute fakes.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultModelName   = "gemini-2.5-flash"
	defaultTemperature = float32(0.7)
)

// Turn is one prior exchange turn replayed to the provider. Role is "user"
// or "model".
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// TextGenerator is the capability the services depend on: given a prompt and
// a token budget, return unstructured text or fail. Chat additionally
// replays prior turns, in order, before the new message.
type TextGenerator interface {
	Generate(ctx context.Context, promptText string, maxTokens int32) (string, error)
	Chat(ctx context.Context, history []Turn, message string) (string, error)
}

// Gemini implements TextGenerator on the Google GenAI client.
type Gemini struct {
	client    *genai.Client
	modelName string
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Gemini{client: client, modelName: defaultModelName}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

// Generate performs a single stateless generation with the given output
// token budget.
func (g *Gemini) Generate(ctx context.Context, promptText string, maxTokens int32) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	temp := defaultTemperature
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: &maxTokens,
		Temperature:     &temp,
	}

	resp, err := model.GenerateContent(ctx, genai.Text(promptText))
	if err != nil {
		return "", fmt.Errorf("gemini generate request failed: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

// Chat replays the prior turns in order and sends the new message as the
// final user turn.
func (g *Gemini) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	if len(history) == 0 {
		return g.Generate(ctx, message, 2048)
	}

	model := g.client.GenerativeModel(g.modelName)

	maxTokens := int32(2048)
	temp := defaultTemperature
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: &maxTokens,
		Temperature:     &temp,
	}

	session := model.StartChat()
	for _, turn := range history {
		role := "user"
		if turn.Role == "model" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat request failed: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty chat response")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
