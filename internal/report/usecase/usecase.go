package usecase

import (
	"context"

	"lifeops-backend/internal/report/domain"
	"lifeops-backend/pkg/ai"
)

type ReportUsecase interface {
	// Dashboard gathers the live collections into a fresh summary
	Dashboard(ctx context.Context, userID string, refresh bool) (*domain.DashboardSummary, error)
	// Evaluate scores summary, or a freshly built one when summary is nil
	Evaluate(ctx context.Context, userID string, summary *domain.DashboardSummary) (*ai.Evaluation, error)
}
