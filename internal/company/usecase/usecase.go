package usecase

import (
	"context"

	"lifeops-backend/internal/company/domain"
)

// CompanyUsecase defines the interface for applied company business logic
type CompanyUsecase interface {
	// List returns applications, optionally only those with status
	List(ctx context.Context, userID string, status domain.Status, refresh bool) ([]domain.AppliedCompany, error)
	Stats(ctx context.Context, userID string) (domain.Stats, error)
	// Create records a new application; status starts at applied and the
	// applied date defaults to today
	Create(ctx context.Context, userID string, input domain.AppliedCompany) (*domain.AppliedCompany, error)
	// Update edits the descriptive fields; id and status are kept
	Update(ctx context.Context, userID, id string, input domain.AppliedCompany) (*domain.AppliedCompany, error)
	// ChangeStatus moves an application along the status graph
	ChangeStatus(ctx context.Context, userID, id string, status domain.Status) (*domain.AppliedCompany, error)
	Delete(ctx context.Context, userID, id string) error
}
