package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

func newAuthHTTPHandler(svc handler.AuthServicer) http.Handler {
	return newHTTPHandler(handler.NewServer(svc, nil, nil, nil, nil, nil))
}

func userFixture() domain.User {
	return domain.User{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		Name:      "Alice",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// ---- POST /auth/register ---------------------------------------------------

func TestRegisterUser_201(t *testing.T) {
	user := userFixture()
	var gotName string
	svc := &mockAuthServicer{
		register: func(_ context.Context, _, _, name string) (domain.User, string, error) {
			gotName = name
			return user, "signed-token", nil
		},
	}

	rec := serve(t, newAuthHTTPHandler(svc), uuid.Nil, http.MethodPost, "/auth/register", map[string]any{
		"email": "alice@example.com", "password": "longenough", "name": "Alice",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Alice", gotName)

	var resp gen.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, user.ID, resp.User.Id)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterUser_NameIsOptional(t *testing.T) {
	svc := &mockAuthServicer{
		register: func(_ context.Context, _, _, name string) (domain.User, string, error) {
			assert.Empty(t, name)
			return userFixture(), "tok", nil
		},
	}

	rec := serve(t, newAuthHTTPHandler(svc), uuid.Nil, http.MethodPost, "/auth/register", map[string]any{
		"email": "alice@example.com", "password": "longenough",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterUser_409_DuplicateEmail(t *testing.T) {
	svc := &mockAuthServicer{
		register: func(context.Context, string, string, string) (domain.User, string, error) {
			return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", domain.ErrConflict)
		},
	}

	rec := serve(t, newAuthHTTPHandler(svc), uuid.Nil, http.MethodPost, "/auth/register", map[string]any{
		"email": "alice@example.com", "password": "longenough",
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email already registered", decodeError(t, rec).Message)
}

func TestRegisterUser_422_ShortPassword(t *testing.T) {
	svc := &mockAuthServicer{
		register: func(context.Context, string, string, string) (domain.User, string, error) {
			return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w: password must be at least 8 characters", domain.ErrValidation)
		},
	}

	rec := serve(t, newAuthHTTPHandler(svc), uuid.Nil, http.MethodPost, "/auth/register", map[string]any{
		"email": "alice@example.com", "password": "short",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "password must be at least 8 characters", decodeError(t, rec).Message)
}

// ---- POST /auth/login ------------------------------------------------------

func TestLoginUser_200(t *testing.T) {
	user := userFixture()
	svc := &mockAuthServicer{
		login: func(_ context.Context, email, password string) (domain.User, string, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "correct horse", password)
			return user, "signed-token", nil
		},
	}

	rec := serve(t, newAuthHTTPHandler(svc), uuid.Nil, http.MethodPost, "/auth/login", map[string]any{
		"email": "alice@example.com", "password": "correct horse",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLoginUser_401(t *testing.T) {
	svc := &mockAuthServicer{
		login: func(context.Context, string, string) (domain.User, string, error) {
			return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w: invalid email or password", domain.ErrUnauthorized)
		},
	}

	rec := serve(t, newAuthHTTPHandler(svc), uuid.Nil, http.MethodPost, "/auth/login", map[string]any{
		"email": "alice@example.com", "password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeError(t, rec).Code)
}
