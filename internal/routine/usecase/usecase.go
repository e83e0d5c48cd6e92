package usecase

import (
	"context"

	"lifeops-backend/internal/routine/domain"
)

type RoutineUsecase interface {
	// Today returns the fixed checklist with today's completion state
	Today(ctx context.Context, userID string, refresh bool) ([]domain.Item, domain.Stats, error)
	// Check records a routine as done or not done today
	Check(ctx context.Context, userID, routineID string, completed bool) (*domain.Check, error)
}
