package usecase

import (
	"context"

	authdomain "lifeops-backend/internal/auth/domain"
)

// AuthUsecase resolves bearer Google access tokens into sessions
type AuthUsecase interface {
	// ValidateToken returns the session for token, consulting Google only
	// when the token is not cached
	ValidateToken(ctx context.Context, token string) (*authdomain.Session, error)

	// ActiveSessions lists cached sessions that have not expired
	ActiveSessions() []authdomain.Session
}
