package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mangesh2904/EdunovaBackend/internal/auth"
	"github.com/Mangesh2904/EdunovaBackend/internal/config"
	"github.com/Mangesh2904/EdunovaBackend/internal/core"
	"github.com/Mangesh2904/EdunovaBackend/internal/llm"
	"github.com/Mangesh2904/EdunovaBackend/internal/store"
)

type scriptedGenerator struct {
	generate func(promptText string) (string, error)
}

func (g *scriptedGenerator) Generate(_ context.Context, promptText string, _ int32) (string, error) {
	return g.generate(promptText)
}

func (g *scriptedGenerator) Chat(_ context.Context, _ []llm.Turn, message string) (string, error) {
	return g.generate(message)
}

func newTestServer(t *testing.T, gen llm.TextGenerator) http.Handler {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	dbStore, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbStore.Close() })

	chatbot := core.NewChatbotService(dbStore, gen)
	placement := core.NewPlacementService(dbStore, gen, nil)
	roadmap := core.NewRoadmapService(gen, nil)
	return NewRouter(NewAPIHandler(chatbot, placement, roadmap))
}

func doRequest(t *testing.T, handler http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAskChatbot(t *testing.T) {
	gen := &scriptedGenerator{generate: func(string) (string, error) {
		return "Happy to help with that topic!", nil
	}}
	srv := newTestServer(t, gen)

	rec := doRequest(t, srv, http.MethodPost, "/api/chatbot/ask", `{"message":"explain big-O"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Happy to help with that topic!", body["response"])
}

func TestAskChatbot_MissingMessage(t *testing.T) {
	srv := newTestServer(t, &scriptedGenerator{generate: func(string) (string, error) {
		t.Error("no external call may be made for an invalid request")
		return "", errors.New("unexpected call")
	}})

	rec := doRequest(t, srv, http.MethodPost, "/api/chatbot/ask", `{"message":"  "}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message is required")
}

func TestAskChatbot_UpstreamFailure(t *testing.T) {
	gen := &scriptedGenerator{generate: func(string) (string, error) {
		return "", errors.New("quota exceeded")
	}}
	srv := newTestServer(t, gen)

	rec := doRequest(t, srv, http.MethodPost, "/api/chatbot/ask", `{"message":"hi"}`, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to get response from chatbot")
}

func TestChatHistory_RequiresAuth(t *testing.T) {
	srv := newTestServer(t, &scriptedGenerator{generate: func(string) (string, error) {
		return "ok", nil
	}})

	rec := doRequest(t, srv, http.MethodGet, "/api/chatbot/history", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/chatbot/history", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatFlowPersistsForAuthenticatedUser(t *testing.T) {
	gen := &scriptedGenerator{generate: func(string) (string, error) {
		return "Recursion is a function calling itself.", nil
	}}
	srv := newTestServer(t, gen)

	token, err := auth.GenerateJWT("user-42")
	require.NoError(t, err)

	rec := doRequest(t, srv, http.MethodPost, "/api/chatbot/ask", `{"message":"what is recursion?"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/chatbot/history", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		History []store.ChatExchange `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.History, 1)
	assert.Equal(t, "what is recursion?", body.History[0].UserMessage)
}

func TestGeneratePlacement_Validation(t *testing.T) {
	srv := newTestServer(t, &scriptedGenerator{generate: func(string) (string, error) {
		t.Error("no external call may be made for an invalid request")
		return "", errors.New("unexpected call")
	}})

	rec := doRequest(t, srv, http.MethodPost, "/api/placement/generate", `{"role":"SDE"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Company name is required")

	rec = doRequest(t, srv, http.MethodPost, "/api/placement/generate", `{"companyName":"Google"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Role is required")
}

func TestGeneratePlacement_SchemaValidEvenOnUpstreamFailure(t *testing.T) {
	gen := &scriptedGenerator{generate: func(string) (string, error) {
		return "", errors.New("provider down")
	}}
	srv := newTestServer(t, gen)

	rec := doRequest(t, srv, http.MethodPost, "/api/placement/generate", `{"companyName":"Google","role":"SDE"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var content core.PlacementContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &content))
	require.Len(t, content.Questions, 2)
	for _, q := range content.Questions {
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.LessOrEqual(t, q.CorrectAnswer, 3)
	}
	assert.NotEmpty(t, content.Concepts)
}

func TestSearchCompanies_Validation(t *testing.T) {
	srv := newTestServer(t, &scriptedGenerator{generate: func(string) (string, error) {
		return `["Google"]`, nil
	}})

	rec := doRequest(t, srv, http.MethodGet, "/api/placement/companies/search?query=a", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 2 characters")

	rec = doRequest(t, srv, http.MethodGet, "/api/placement/companies/search?query=go", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Companies []string `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Google"}, body.Companies)
}

func TestVideoResources(t *testing.T) {
	gen := &scriptedGenerator{generate: func(string) (string, error) {
		return `{"youtube":[{"title":"T","channel":"C","url":"notaurl","type":"Tutorial"}]}`, nil
	}}
	srv := newTestServer(t, gen)

	rec := doRequest(t, srv, http.MethodGet, "/api/placement/resources?companyName=Google&role=SDE", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		YouTube []struct {
			URL         string `json:"url"`
			SearchQuery string `json:"search_query"`
		} `json:"youtube"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.YouTube, 1)
	assert.Empty(t, body.YouTube[0].URL)
	assert.Equal(t, "C T", body.YouTube[0].SearchQuery)
}

func TestGenerateRoadmap_Validation(t *testing.T) {
	srv := newTestServer(t, &scriptedGenerator{generate: func(string) (string, error) {
		return "{}", nil
	}})

	rec := doRequest(t, srv, http.MethodPost, "/api/roadmap/generate", `{"weeks":4}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Topic is required")

	rec = doRequest(t, srv, http.MethodPost, "/api/roadmap/generate", `{"topic":"Go","weeks":0}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "between 1 and 52")
}
