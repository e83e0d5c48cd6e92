package usecase

import (
	"context"

	"lifeops-backend/internal/weakpoint/domain"
)

type WeakPointUsecase interface {
	List(ctx context.Context, userID string, category domain.Category, refresh bool) ([]domain.WeakPoint, error)
	Create(ctx context.Context, userID string, input domain.WeakPoint) (*domain.WeakPoint, error)
	Update(ctx context.Context, userID, id string, input domain.WeakPoint) (*domain.WeakPoint, error)
	SetStatus(ctx context.Context, userID, id string, status domain.Status) (*domain.WeakPoint, error)
	Delete(ctx context.Context, userID, id string) error
}
