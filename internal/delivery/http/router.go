package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventregistry/internal/delivery/http/controllers"
	"eventregistry/internal/delivery/http/middleware"
	"eventregistry/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Every /eventos route is wrapped with bearer-token auth; /usuarios is open.
func NewRouter(userController *controllers.UserController, eventController *controllers.EventController, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Registration and login
	mux.HandleFunc("POST /usuarios", userController.Register)
	mux.HandleFunc("GET /usuarios", userController.Login)

	// Events (owner-scoped)
	requireAuth := middleware.RequireAuth(verifier, logger)
	mux.HandleFunc("GET /eventos", requireAuth(eventController.List))
	mux.HandleFunc("POST /eventos", requireAuth(eventController.Create))
	mux.HandleFunc("GET /eventos/{id}", requireAuth(eventController.Get))
	mux.HandleFunc("PUT /eventos/{id}", requireAuth(eventController.Update))
	mux.HandleFunc("DELETE /eventos/{id}", requireAuth(eventController.Delete))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
