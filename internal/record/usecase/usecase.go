package usecase

import (
	"context"

	"lifeops-backend/internal/record/domain"
)

// RecordUsecase is CRUD over the workbook's generic tabs
type RecordUsecase interface {
	List(ctx context.Context, userID, collection string, refresh bool) ([]domain.Record, error)
	// Create fills a uuid id when none is given and today's date for tabs
	// with a date column
	Create(ctx context.Context, userID, collection string, r domain.Record) (domain.Record, error)
	// Update merges the given fields into the stored record
	Update(ctx context.Context, userID, collection, id string, patch domain.Record) (domain.Record, error)
	Delete(ctx context.Context, userID, collection, id string) error
}
