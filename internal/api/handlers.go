package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Mangesh2904/EdunovaBackend/internal/auth"
	"github.com/Mangesh2904/EdunovaBackend/internal/core"
	"github.com/Mangesh2904/EdunovaBackend/internal/llm"
	"github.com/Mangesh2904/EdunovaBackend/internal/store"
)

type contextKey string

const userIDKey contextKey = "userID"

type APIHandler struct {
	chatbotService   *core.ChatbotService
	placementService *core.PlacementService
	roadmapService   *core.RoadmapService
}

func NewAPIHandler(chatbot *core.ChatbotService, placement *core.PlacementService, roadmap *core.RoadmapService) *APIHandler {
	return &APIHandler{
		chatbotService:   chatbot,
		placementService: placement,
		roadmapService:   roadmap,
	}
}

// OptionalAuthMiddleware attaches a user identity when a valid bearer token
// is present and lets anonymous requests through. A token that is present
// but invalid is rejected rather than silently downgraded.
func (h *APIHandler) OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := auth.ValidateJWT(tokenString)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuthMiddleware rejects requests without a valid bearer token.
func (h *APIHandler) RequireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := auth.ValidateJWT(tokenString)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identityFromContext returns the user ID when the request carried one, nil
// for anonymous callers.
func identityFromContext(ctx context.Context) *string {
	if userID, ok := ctx.Value(userIDKey).(string); ok && userID != "" {
		return &userID
	}
	return nil
}

type AskChatbotRequest struct {
	Message string     `json:"message"`
	History []llm.Turn `json:"history"`
}

func (h *APIHandler) AskChatbotHandler(w http.ResponseWriter, r *http.Request) {
	var req AskChatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	userID := identityFromContext(r.Context())
	response, err := h.chatbotService.Ask(r.Context(), userID, req.Message, req.History)
	if err != nil {
		log.Printf("Error in chatbot request: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get response from chatbot")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"response": response})
}

func (h *APIHandler) ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(userIDKey).(string)

	history, err := h.chatbotService.History(userID)
	if err != nil {
		log.Printf("Error fetching chat history for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}
	if history == nil {
		history = []store.ChatExchange{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"history": history})
}

type GeneratePlacementRequest struct {
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
}

func (h *APIHandler) GeneratePlacementHandler(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlacementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	companyName := strings.TrimSpace(req.CompanyName)
	role := strings.TrimSpace(req.Role)
	if companyName == "" {
		respondError(w, http.StatusBadRequest, "Company name is required")
		return
	}
	if role == "" {
		respondError(w, http.StatusBadRequest, "Role is required")
		return
	}

	userID := identityFromContext(r.Context())
	content := h.placementService.Generate(r.Context(), userID, companyName, role)
	respondJSON(w, http.StatusOK, content)
}

func (h *APIHandler) PlacementHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(userIDKey).(string)

	history, err := h.placementService.History(userID)
	if err != nil {
		log.Printf("Error fetching placement history for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch placement history")
		return
	}
	if history == nil {
		history = []store.PlacementRecord{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"history": history})
}

func (h *APIHandler) SearchCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if len(query) < 2 {
		respondError(w, http.StatusBadRequest, "Query must be at least 2 characters")
		return
	}

	companies := h.placementService.SearchCompanies(r.Context(), query)
	respondJSON(w, http.StatusOK, map[string]any{"companies": companies})
}

func (h *APIHandler) VideoResourcesHandler(w http.ResponseWriter, r *http.Request) {
	companyName := strings.TrimSpace(r.URL.Query().Get("companyName"))
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	if companyName == "" {
		respondError(w, http.StatusBadRequest, "Company name is required")
		return
	}
	if role == "" {
		respondError(w, http.StatusBadRequest, "Role is required")
		return
	}

	videos := h.placementService.VideoResources(r.Context(), companyName, role)
	respondJSON(w, http.StatusOK, map[string]any{"youtube": videos})
}

type GenerateRoadmapRequest struct {
	Topic string `json:"topic"`
	Weeks int    `json:"weeks"`
}

func (h *APIHandler) GenerateRoadmapHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		respondError(w, http.StatusBadRequest, "Topic is required")
		return
	}
	if req.Weeks < 1 || req.Weeks > 52 {
		respondError(w, http.StatusBadRequest, "Weeks must be between 1 and 52")
		return
	}

	roadmap, err := h.roadmapService.Generate(r.Context(), strings.TrimSpace(req.Topic), req.Weeks)
	if err != nil {
		log.Printf("Error generating roadmap for %q: %v", req.Topic, err)
		respondError(w, http.StatusInternalServerError, "Failed to generate roadmap")
		return
	}
	respondJSON(w, http.StatusOK, roadmap)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
