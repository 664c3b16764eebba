// Package core implements the application services: chatbot conversations,
// placement content generation, company search, video resources, and
// learning roadmaps. Each service composes a prompt, calls the injected
// text generator, and runs the recovery pipeline over the response.
package core

import (
	"context"
	"fmt"
	"log"

	"github.com/Mangesh2904/EdunovaBackend/internal/llm"
	"github.com/Mangesh2904/EdunovaBackend/internal/prompt"
	"github.com/Mangesh2904/EdunovaBackend/internal/store"
)

type ChatbotService struct {
	dbStore   *store.SQLiteStore
	generator llm.TextGenerator
}

func NewChatbotService(db *store.SQLiteStore, generator llm.TextGenerator) *ChatbotService {
	return &ChatbotService{dbStore: db, generator: generator}
}

// Ask sends the message to the LLM wrapped in the EduBot context, replaying
// any prior turns first. There is no meaningful fallback for free-text chat,
// so upstream failures surface to the caller. When an identity is present
// the exchange is persisted best-effort: a storage failure is logged and the
// response still returned.
func (s *ChatbotService) Ask(ctx context.Context, userID *string, message string, history []llm.Turn) (string, error) {
	response, err := s.generator.Chat(ctx, history, prompt.ChatContext(message))
	if err != nil {
		return "", fmt.Errorf("chatbot completion failed: %w", err)
	}

	if userID != nil {
		exchange := store.ChatExchange{
			UserID:      *userID,
			UserMessage: message,
			BotResponse: response,
		}
		if err := s.dbStore.SaveChatExchange(&exchange); err != nil {
			log.Printf("Failed to save chat exchange for user %s: %v", *userID, err)
		}
	}

	return response, nil
}

// History returns the user's chat exchanges, most recent first.
func (s *ChatbotService) History(userID string) ([]store.ChatExchange, error) {
	return s.dbStore.ChatHistoryByUser(userID)
}
