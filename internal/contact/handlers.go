package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// Submitter is what the HTTP layer needs from the service.
type Submitter interface {
	Submit(ctx context.Context, sub Submission, meta RequestMeta) error
}

type Handler struct {
	svc Submitter
}

func NewHandler(svc Submitter) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) SubmitFormHandler(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	meta := RequestMeta{
		IP:        ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	err := h.svc.Submit(r.Context(), sub, meta)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Emails sent successfully! Expect a reply within 24-48 hours.",
		})
	case errors.Is(err, ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Name, email, and message are required")
	case errors.Is(err, ErrEnrichment):
		writeError(w, http.StatusInternalServerError, "Network error. Please try again.")
	default:
		writeError(w, http.StatusInternalServerError, "An error occurred while sending the message. Please try again later.")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
