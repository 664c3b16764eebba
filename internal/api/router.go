package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Generation routes accept anonymous callers; history is persisted
		// only when an identity is present.
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.OptionalAuthMiddleware)

			r.Post("/chatbot/ask", apiHandler.AskChatbotHandler)
			r.Post("/placement/generate", apiHandler.GeneratePlacementHandler)
			r.Get("/placement/companies/search", apiHandler.SearchCompaniesHandler)
			r.Get("/placement/resources", apiHandler.VideoResourcesHandler)
			r.Post("/roadmap/generate", apiHandler.GenerateRoadmapHandler)
		})

		// History routes require an identity.
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.RequireAuthMiddleware)

			r.Get("/chatbot/history", apiHandler.ChatHistoryHandler)
			r.Get("/placement/history", apiHandler.PlacementHistoryHandler)
		})
	})

	return r
}
