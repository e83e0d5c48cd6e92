package repository

import (
	"context"

	"lifeops-backend/internal/apikey/domain"
)

// ApiKeyRepository defines the interface for vault storage. Every mutation
// re-reads the vault afterwards.
type ApiKeyRepository interface {
	List(ctx context.Context, userID string, refresh bool) ([]domain.ApiKey, error)
	Find(ctx context.Context, userID, id string) (*domain.ApiKey, error)
	Create(ctx context.Context, userID string, key domain.ApiKey) error
	Update(ctx context.Context, userID string, key domain.ApiKey) error
	Delete(ctx context.Context, userID, id string) error
}

// PinRepository keeps the vault PIN hash
type PinRepository interface {
	Get(ctx context.Context, userID string) (string, bool, error)
	Set(ctx context.Context, userID, hash string) error
	Delete(ctx context.Context, userID string) error
}
