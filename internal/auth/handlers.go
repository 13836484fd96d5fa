package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/davetechinnovation/contact-backend/internal/utils"
)

// AuthService is what the HTTP layer needs from the service; tests swap in
// a stub.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, identifier, password string) (LoginResult, error)
	Profile(ctx context.Context, userID string) (ProfileInfo, error)
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.svc.Signup(r.Context(), body.Username, body.Email, body.Password)
	switch {
	case err == nil:
		writeMessage(w, http.StatusCreated, "User created successfully")
	case errors.Is(err, ErrMissingFields):
		writeMessage(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, ErrInvalidEmail):
		writeMessage(w, http.StatusBadRequest, "Invalid email format")
	case errors.Is(err, ErrEmailTaken):
		writeMessage(w, http.StatusBadRequest, "Email is already registered")
	case errors.Is(err, ErrUsernameTaken):
		writeMessage(w, http.StatusBadRequest, "Username is already taken")
	default:
		writeMessage(w, http.StatusInternalServerError, "Database error")
	}
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), body.Identifier, body.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{
			"token":    result.Token,
			"username": result.Username,
			"message":  "Login successful",
		})
	case errors.Is(err, ErrMissingFields):
		writeMessage(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, ErrNoAccount):
		writeMessage(w, http.StatusBadRequest, "No account found with this email or username")
	case errors.Is(err, ErrWrongPassword):
		writeMessage(w, http.StatusBadRequest, "Incorrect password")
	default:
		writeMessage(w, http.StatusInternalServerError, "Database error")
	}
}

func (h *Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	profile, err := h.svc.Profile(r.Context(), userID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{
			"username": profile.Username,
			"email":    profile.Email,
		})
	case errors.Is(err, ErrNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	default:
		writeMessage(w, http.StatusInternalServerError, "Database error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
