package repository

import (
	"context"

	"lifeops-backend/internal/company/domain"
)

// CompanyRepository defines the interface for applied company data access
type CompanyRepository interface {
	List(ctx context.Context, userID string, refresh bool) ([]domain.AppliedCompany, error)
	Find(ctx context.Context, userID, id string) (domain.AppliedCompany, error)
	Create(ctx context.Context, userID string, company domain.AppliedCompany) error
	Update(ctx context.Context, userID, id string, company domain.AppliedCompany) error
	Delete(ctx context.Context, userID, id string) error
}
