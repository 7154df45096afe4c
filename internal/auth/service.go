package auth

import (
	"context"
	"errors"
	"time"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/users"
)

// UserStore is the slice of the users repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (*users.User, error)
	GetByUsername(ctx context.Context, username string) (*users.User, error)
	GetByID(ctx context.Context, id int64) (*users.User, error)
}

// Service handles signup, login and token refresh.
type Service struct {
	store      UserStore
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(store UserStore, secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		store:      store,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Signup validates the password policy and creates the user with a bcrypt
// hash. Duplicates are detected by the insert itself, not a prior lookup.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*users.User, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := s.store.Create(ctx, username, email, hash)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUsernameTaken):
			return nil, apperr.Conflict("Username already taken.")
		case errors.Is(err, users.ErrEmailTaken):
			return nil, apperr.Conflict("Email already in use.")
		}
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and mints an access/refresh token pair.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, apperr.Unauthorized("Invalid username or password.")
		}
		return nil, err
	}

	if !CheckPassword(u.PasswordHash, password) {
		return nil, apperr.Unauthorized("Invalid username or password.")
	}

	return GenerateTokenPair(u.ID, s.secret, s.accessTTL, s.refreshTTL)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, tokenType, err := ParseToken(refreshToken, s.secret)
	if err != nil || tokenType != TokenTypeRefresh {
		return nil, apperr.Unauthorized("Refresh token is invalid or expired.")
	}

	// The user may have been deleted since the token was issued.
	if _, err := s.store.GetByID(ctx, userID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, apperr.Unauthorized("Refresh token is invalid or expired.")
		}
		return nil, err
	}

	return GenerateTokenPair(userID, s.secret, s.accessTTL, s.refreshTTL)
}
