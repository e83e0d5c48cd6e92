package repository

import (
	"context"

	"lifeops-backend/internal/bucket/domain"
)

// BucketRepository defines the interface for bucket list storage
type BucketRepository interface {
	// List returns the user's items; refresh forces a re-read of the document
	List(ctx context.Context, userID string, refresh bool) ([]domain.BucketItem, error)

	// Create appends an item and rewrites the document payload
	Create(ctx context.Context, userID string, item domain.BucketItem) error

	UpdateStatus(ctx context.Context, userID, id string, status domain.Status) error

	Delete(ctx context.Context, userID, id string) error
}
