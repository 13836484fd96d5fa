package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davetechinnovation/contact-backend/internal/auth"
	"github.com/davetechinnovation/contact-backend/internal/middleware"
	"github.com/davetechinnovation/contact-backend/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService scripts the service results so handler tests exercise
// only the HTTP mapping.
type stubAuthService struct {
	signupErr  error
	loginRes   auth.LoginResult
	loginErr   error
	profile    auth.ProfileInfo
	profileErr error
}

func (s *stubAuthService) Signup(ctx context.Context, username, email, password string) error {
	return s.signupErr
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (auth.LoginResult, error) {
	return s.loginRes, s.loginErr
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (auth.ProfileInfo, error) {
	return s.profile, s.profileErr
}

func newAuthServer(t *testing.T, svc auth.AuthService, tokens *token.Manager) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Mount("/auth", auth.SetupRoutes(auth.NewHandler(svc), middleware.BearerAuth(tokens)))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var m map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func TestSignupHandler_Created(t *testing.T) {
	srv := newAuthServer(t, &stubAuthService{}, token.NewManager("s", time.Hour))

	resp := postJSON(t, srv.URL+"/auth/signup", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw123456",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User created successfully", decodeBody(t, resp)["message"])
}

func TestSignupHandler_Conflicts(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		message string
	}{
		{"username taken", auth.ErrUsernameTaken, "Username is already taken"},
		{"email taken", auth.ErrEmailTaken, "Email is already registered"},
		{"missing fields", auth.ErrMissingFields, "All fields are required"},
		{"bad email", auth.ErrInvalidEmail, "Invalid email format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newAuthServer(t, &stubAuthService{signupErr: tc.err}, token.NewManager("s", time.Hour))

			resp := postJSON(t, srv.URL+"/auth/signup", map[string]string{
				"username": "alice", "email": "a@x.com", "password": "pw",
			})

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.message, decodeBody(t, resp)["message"])
		})
	}
}

func TestSignupHandler_StorageFailure(t *testing.T) {
	srv := newAuthServer(t, &stubAuthService{signupErr: assert.AnError}, token.NewManager("s", time.Hour))

	resp := postJSON(t, srv.URL+"/auth/signup", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestLoginHandler_Success(t *testing.T) {
	svc := &stubAuthService{loginRes: auth.LoginResult{Token: "tok-123", Username: "alice"}}
	srv := newAuthServer(t, svc, token.NewManager("s", time.Hour))

	resp := postJSON(t, srv.URL+"/auth/login", map[string]string{
		"identifier": "alice", "password": "pw123456",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "tok-123", body["token"])
	assert.Equal(t, "alice", body["username"])
}

func TestLoginHandler_Failures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"no account", auth.ErrNoAccount, http.StatusBadRequest, "No account found with this email or username"},
		{"wrong password", auth.ErrWrongPassword, http.StatusBadRequest, "Incorrect password"},
		{"missing fields", auth.ErrMissingFields, http.StatusBadRequest, "All fields are required"},
		{"storage", assert.AnError, http.StatusInternalServerError, "Database error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newAuthServer(t, &stubAuthService{loginErr: tc.err}, token.NewManager("s", time.Hour))

			resp := postJSON(t, srv.URL+"/auth/login", map[string]string{
				"identifier": "alice", "password": "pw",
			})

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.message, decodeBody(t, resp)["message"])
		})
	}
}

func TestProfileHandler_RequiresToken(t *testing.T) {
	srv := newAuthServer(t, &stubAuthService{}, token.NewManager("s", time.Hour))

	resp, err := http.Get(srv.URL + "/auth/profile")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileHandler_Success(t *testing.T) {
	tokens := token.NewManager("s", time.Hour)
	svc := &stubAuthService{profile: auth.ProfileInfo{Username: "alice", Email: "a@x.com"}}
	srv := newAuthServer(t, svc, tokens)

	tok, err := tokens.Issue("user-1")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "a@x.com", body["email"])
}

func TestProfileHandler_UserVanished(t *testing.T) {
	tokens := token.NewManager("s", time.Hour)
	srv := newAuthServer(t, &stubAuthService{profileErr: auth.ErrNotFound}, tokens)

	tok, err := tokens.Issue("ghost")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfileHandler_ExpiredToken(t *testing.T) {
	expired := token.NewManager("s", -time.Minute)
	live := token.NewManager("s", time.Hour)
	srv := newAuthServer(t, &stubAuthService{}, live)

	tok, err := expired.Issue("user-1")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "Token expired")
}
