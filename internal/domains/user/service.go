package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic layer contract.
// This is the session provider the rest of the app talks to: every
// protected route derives its identity from tokens this service issues.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
}
