package usecase

import (
	"context"

	"lifeops-backend/internal/bucket/domain"
)

// BucketUsecase defines the interface for bucket list logic
type BucketUsecase interface {
	List(ctx context.Context, userID string, refresh bool) ([]domain.BucketItem, error)

	// Create adds a todo item; an empty category files it under 기타
	Create(ctx context.Context, userID, title string, category domain.Category) (*domain.BucketItem, error)

	UpdateStatus(ctx context.Context, userID, id string, status domain.Status) error

	Delete(ctx context.Context, userID, id string) error
}
