package api

import (
	"net/http"

	"github.com/arash/truth-or-dare-bot/internal/api/handlers"
	"github.com/arash/truth-or-dare-bot/internal/api/middleware"
	"github.com/arash/truth-or-dare-bot/internal/events"
	"github.com/arash/truth-or-dare-bot/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *events.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, services.User)
	userHandler := handlers.NewUserHandler(services.User)
	sessionHandler := handlers.NewSessionHandler(services.Session, hub)
	actionHandler := handlers.NewActionHandler(services.Action, services.Session, services.Prompt, hub)
	adminHandler := handlers.NewAdminHandler(services.Prompt, services.Stats)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Session)

	r.Route("/api/v1", func(r chi.Router) {
		// Transport token exchange, gated on the pre-shared API key
		r.Post("/auth/token", authHandler.Token)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/auth/me", authHandler.Me)
			r.Get("/users/me/stats", userHandler.MyStats)

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", sessionHandler.Create)
				r.Get("/{id}", sessionHandler.Get)
				r.Post("/{id}/join", sessionHandler.Join)
				r.Post("/{id}/start", sessionHandler.Start)
				r.Post("/{id}/next-turn", sessionHandler.NextTurn)
				r.Post("/{id}/end", sessionHandler.End)
				r.Post("/{id}/actions", actionHandler.Record)
			})

			r.Post("/actions/{turnId}/complete", actionHandler.Complete)

			// Operator surface
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.Admin(services.User))

				r.Get("/stats/users", adminHandler.UserStats)
				r.Get("/stats/sessions", adminHandler.SessionStats)
				r.Get("/stats/prompts", adminHandler.PromptStats)
				r.Get("/users/active", adminHandler.ActiveUsers)
				r.Get("/users/search", adminHandler.SearchUsers)
				r.Post("/prompts", adminHandler.CreatePrompt)
				r.Get("/prompts", adminHandler.ListPrompts)
			})
		})

		// Session event feed
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
