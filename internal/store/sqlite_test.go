package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mangesh2904/EdunovaBackend/internal/pipeline"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestChatExchangeRoundTrip(t *testing.T) {
	s := newTestStore(t)

	first := &ChatExchange{UserID: "u1", UserMessage: "what is a goroutine?", BotResponse: "a lightweight thread"}
	require.NoError(t, s.SaveChatExchange(first))
	time.Sleep(5 * time.Millisecond) // distinct created_at timestamps
	second := &ChatExchange{UserID: "u1", UserMessage: "and a channel?", BotResponse: "a typed conduit"}
	require.NoError(t, s.SaveChatExchange(second))
	other := &ChatExchange{UserID: "u2", UserMessage: "hi", BotResponse: "hello"}
	require.NoError(t, s.SaveChatExchange(other))

	history, err := s.ChatHistoryByUser("u1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID, "most recent first")
	assert.Equal(t, first.ID, history[1].ID)

	none, err := s.ChatHistoryByUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlacementRoundTrip(t *testing.T) {
	s := newTestStore(t)

	record := &PlacementRecord{
		UserID:      "u1",
		CompanyName: "Google",
		Role:        "SDE",
		Questions:   pipeline.FallbackQuestions("Google", "SDE"),
		Concepts:    "## Study Guide\n- arrays",
	}
	require.NoError(t, s.SavePlacement(record))
	assert.NotEmpty(t, record.ID)

	history, err := s.PlacementHistoryByUser("u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Google", history[0].CompanyName)
	assert.Equal(t, record.Questions, history[0].Questions)
	assert.Equal(t, record.Concepts, history[0].Concepts)
}
