package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bookstore-api/internal/domains/user"
	"bookstore-api/pkg/jwt"
)

type userService struct {
	repo   user.Repository
	tokens *jwt.Issuer
}

func NewUserService(repo user.Repository, tokens *jwt.Issuer) user.Service {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	if req == nil {
		return nil, user.ErrInvalidCredentials
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	// Constant-time comparison; a mismatch is indistinguishable from an
	// unknown username at the API.
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Email, u.Roles)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.LoginResponse{Token: token}, nil
}
