package handler

import (
	"context"
	"errors"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// RegisterUser handles POST /auth/register.
func (s *Server) RegisterUser(ctx context.Context, req gen.RegisterUserRequestObject) (gen.RegisterUserResponseObject, error) {
	if req.Body == nil {
		return gen.RegisterUser422JSONResponse(requestBody("request body is required")), nil
	}
	var name string
	if req.Body.Name != nil {
		name = *req.Body.Name
	}

	user, token, err := s.auth.Register(ctx, req.Body.Email, req.Body.Password, name)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return gen.RegisterUser409JSONResponse(conflictBody("email already registered")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.RegisterUser422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.RegisterUser201JSONResponse{User: userToResponse(user), Token: token}, nil
}

// LoginUser handles POST /auth/login.
func (s *Server) LoginUser(ctx context.Context, req gen.LoginUserRequestObject) (gen.LoginUserResponseObject, error) {
	if req.Body == nil {
		return gen.LoginUser401JSONResponse(errorBody("unauthorized", "invalid email or password")), nil
	}

	user, token, err := s.auth.Login(ctx, req.Body.Email, req.Body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return gen.LoginUser401JSONResponse(errorBody("unauthorized", "invalid email or password")), nil
		}
		return nil, err
	}

	return gen.LoginUser200JSONResponse{User: userToResponse(user), Token: token}, nil
}

func userToResponse(u domain.User) gen.User {
	return gen.User{
		Id:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
