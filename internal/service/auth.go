package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/auth"
	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/repo"
)

// TokenIssuer issues bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// AuthService registers accounts and logs users in.
type AuthService struct {
	users  repo.UserRepo
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repo.UserRepo, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates an account and returns it with a fresh token.
// Emails are stored lower-cased; a taken email yields domain.ErrConflict.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (domain.User, string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}
	if len(password) < auth.MinPasswordLength {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w: password must be at least %d characters",
			domain.ErrValidation, auth.MinPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	})
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user, token, nil
}

// Login checks the credentials and returns the user with a fresh token.
// Unknown emails and wrong passwords both yield domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w: invalid email or password", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w: invalid email or password", domain.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return user, token, nil
}

// normalizeEmail trims and lower-cases a bare address, rejecting display
// names and malformed input.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email %q", domain.ErrValidation, raw)
	}
	return email, nil
}
