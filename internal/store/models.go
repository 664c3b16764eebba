package store

import (
	"time"

	"github.com/Mangesh2904/EdunovaBackend/internal/pipeline"
)

// ChatExchange is one persisted chatbot request/response pair. Rows are
// never mutated or deleted; history queries return them newest first.
type ChatExchange struct {
	ID          string    `json:"id"` // UUID
	UserID      string    `json:"-"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlacementRecord is one persisted placement generation: the normalized
// question set plus the markdown study guide returned to the caller.
type PlacementRecord struct {
	ID          string                  `json:"id"` // UUID
	UserID      string                  `json:"-"`
	CompanyName string                  `json:"companyName"`
	Role        string                  `json:"role"`
	Questions   []pipeline.QuizQuestion `json:"questions"`
	Concepts    string                  `json:"concepts"`
	CreatedAt   time.Time               `json:"createdAt"`
}
