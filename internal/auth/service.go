// Package auth implements signup, login, and profile lookup for the single
// user table, issuing stateless bearer tokens on login.
package auth

import (
	"context"
	"errors"
	"net/mail"

	"github.com/davetechinnovation/contact-backend/internal/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token    string
	Username string
}

// ProfileInfo is the non-sensitive slice of a user record.
type ProfileInfo struct {
	Username string
	Email    string
}

// Service orchestrates the auth flows over an injected store and token
// manager.
type Service struct {
	store  UserStore
	tokens *token.Manager
}

func NewService(store UserStore, tokens *token.Manager) *Service {
	return &Service{store: store, tokens: tokens}
}

// Signup validates the fields, rejects duplicates, hashes the password,
// and persists the new user. An email collision wins over a username
// collision when both apply, matching the message the UI shows.
func (s *Service) Signup(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	existing, err := s.store.FindByUsernameOrEmail(ctx, username, email)
	if err == nil {
		if existing.Email == email {
			return ErrEmailTaken
		}
		return ErrUsernameTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// The existence check above can race a concurrent signup; Create maps
	// the resulting unique violation back onto the taken errors.
	return s.store.Create(ctx, &User{
		UserID:         uuid.NewString(),
		Username:       username,
		Email:          email,
		HashedPassword: string(hashed),
	})
}

// Login accepts a username or an email as the identifier and, when the
// password checks out, issues a signed token embedding the user's id.
func (s *Service) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	if identifier == "" || password == "" {
		return LoginResult{}, ErrMissingFields
	}

	user, err := s.store.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LoginResult{}, ErrNoAccount
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return LoginResult{}, ErrWrongPassword
	}

	tok, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: tok, Username: user.Username}, nil
}

// Profile returns the stored username and email for an already
// authenticated user id. ErrNotFound means the account vanished after the
// token was issued.
func (s *Service) Profile(ctx context.Context, userID string) (ProfileInfo, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return ProfileInfo{}, err
	}
	return ProfileInfo{Username: user.Username, Email: user.Email}, nil
}
