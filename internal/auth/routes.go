package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the auth endpoints. The bearer middleware is passed in
// from main so the token manager is constructed exactly once.
func SetupRoutes(h *Handler, bearer func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/signup", h.SignupHandler)
	r.Post("/login", h.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(bearer)
		r.Get("/profile", h.ProfileHandler)
	})

	return r
}
