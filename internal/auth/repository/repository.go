package repository

import (
	"context"

	authdomain "lifeops-backend/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Touch inserts the user or refreshes email and last-seen time
	Touch(ctx context.Context, user *authdomain.User) error
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
}
