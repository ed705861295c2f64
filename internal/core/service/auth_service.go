package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rl1809/pos-backend/internal/core/domain"
	"github.com/rl1809/pos-backend/internal/port"
)

type AuthService struct {
	users  port.UserRepository
	tokens port.TokenStore
}

func NewAuthService(users port.UserRepository, tokens port.TokenStore) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies credentials and issues an opaque bearer token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" {
		return "", nil, domain.Validationf("The email field is required.")
	}
	if password == "" {
		return "", nil, domain.Validationf("The password field is required.")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.tokens.Save(ctx, token, user.ID); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// Authenticate resolves a bearer token to a user id, returning
// domain.ErrTokenNotFound for unknown or expired tokens.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	return s.tokens.UserID(ctx, token)
}

// CurrentUser loads the user a bearer token was issued to.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	id, err := s.tokens.UserID(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.users.GetUserByID(ctx, id)
}
