package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the contact endpoints behind the bearer middleware;
// an unauthenticated submission must never reach the pipeline.
func SetupRoutes(h *Handler, bearer func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(bearer)
		r.Post("/submit-form", h.SubmitFormHandler)
	})

	return r
}
