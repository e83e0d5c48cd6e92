package usecase

import (
	"context"

	"lifeops-backend/internal/apikey/domain"
)

// ApiKeyUsecase defines the interface for vault logic. Listings and mutation
// results carry masked secrets; only Reveal returns a secret in clear.
type ApiKeyUsecase interface {
	List(ctx context.Context, userID string, refresh bool) ([]domain.ApiKey, error)
	Create(ctx context.Context, userID string, input domain.ApiKey) (*domain.ApiKey, error)
	Update(ctx context.Context, userID, id string, patch domain.Patch) (*domain.ApiKey, error)
	Delete(ctx context.Context, userID, id string) error

	// Reveal returns the secret, checking pin when a vault PIN is set
	Reveal(ctx context.Context, userID, id, pin string) (string, error)

	// SetPin sets, changes or (with an empty pin) clears the vault PIN
	SetPin(ctx context.Context, userID, currentPin, pin string) error
	HasPin(ctx context.Context, userID string) (bool, error)
}
