package repository

import (
	"context"

	"lifeops-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List returns the user's tasks in sheet order
	List(ctx context.Context, userID string, refresh bool) ([]domain.Task, error)

	// Find finds a task by its ID
	Find(ctx context.Context, userID, id string) (domain.Task, error)

	// Create appends a new task
	Create(ctx context.Context, userID string, task domain.Task) error

	// Update overwrites the row carrying id
	Update(ctx context.Context, userID, id string, task domain.Task) error

	// Delete removes the row carrying id
	Delete(ctx context.Context, userID, id string) error
}

// SeedMarker remembers the last date the daily tasks were added
type SeedMarker interface {
	LastSeeded(ctx context.Context, userID string) (string, error)
	MarkSeeded(ctx context.Context, userID, date string) error
}
