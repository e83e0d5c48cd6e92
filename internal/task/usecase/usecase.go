package usecase

import (
	"context"

	"lifeops-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// Today returns tasks due by today, incomplete first then newest first
	Today(ctx context.Context, userID string, refresh bool) ([]domain.Task, error)

	// All returns every task in sheet order
	All(ctx context.Context, userID string, refresh bool) ([]domain.Task, error)

	// CreateTask adds a task; an empty due date means today
	CreateTask(ctx context.Context, userID, title, due string) (*domain.Task, error)

	// ToggleTask sets the completed flag
	ToggleTask(ctx context.Context, userID, taskID string, completed bool) (*domain.Task, error)

	// PostponeTask moves the due date to tomorrow
	PostponeTask(ctx context.Context, userID, taskID string) (*domain.Task, error)

	DeleteTask(ctx context.Context, userID, taskID string) error

	// SeedDaily adds the daily routine tasks once per day and returns how
	// many were added
	SeedDaily(ctx context.Context, userID string) (int, error)
}
