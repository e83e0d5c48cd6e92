package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/clock"
	companyusecase "lifeops-backend/internal/company/usecase"
	"lifeops-backend/internal/report/domain"
	routineusecase "lifeops-backend/internal/routine/usecase"
	taskusecase "lifeops-backend/internal/task/usecase"
	"lifeops-backend/pkg/ai"
)

const (
	msgEvaluateFailed  = "AI 평가 중 오류가 발생했습니다"
	msgEvaluateTimeout = "AI 평가 시간이 초과되었습니다"
)

type reportUsecase struct {
	companies companyusecase.CompanyUsecase
	routines  routineusecase.RoutineUsecase
	tasks     taskusecase.TaskUsecase
	evaluator ai.Evaluator
	timeout   time.Duration
	clock     clock.Clock
}

// NewReportUsecase creates a report usecase. A nil evaluator makes Evaluate
// fail; timeout bounds each evaluation call.
func NewReportUsecase(
	companies companyusecase.CompanyUsecase,
	routines routineusecase.RoutineUsecase,
	tasks taskusecase.TaskUsecase,
	evaluator ai.Evaluator,
	timeout time.Duration,
	clk clock.Clock,
) ReportUsecase {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &reportUsecase{
		companies: companies,
		routines:  routines,
		tasks:     tasks,
		evaluator: evaluator,
		timeout:   timeout,
		clock:     clk,
	}
}

func (u *reportUsecase) Dashboard(ctx context.Context, userID string, refresh bool) (*domain.DashboardSummary, error) {
	companies, err := u.companies.List(ctx, userID, "", refresh)
	if err != nil {
		return nil, err
	}
	_, routineStats, err := u.routines.Today(ctx, userID, refresh)
	if err != nil {
		return nil, err
	}
	tasks, err := u.tasks.Today(ctx, userID, refresh)
	if err != nil {
		return nil, err
	}

	s := domain.BuildDashboardSummary(domain.Inputs{
		AppliedCompanies: companies,
		RoutineStats:     routineStats,
		Tasks:            tasks,
	}, u.clock.Timestamp())
	return &s, nil
}

func (u *reportUsecase) Evaluate(ctx context.Context, userID string, summary *domain.DashboardSummary) (*ai.Evaluation, error) {
	if u.evaluator == nil {
		return nil, apperr.Fail(msgEvaluateFailed, errors.New("no evaluator configured"))
	}
	if summary == nil {
		built, err := u.Dashboard(ctx, userID, false)
		if err != nil {
			return nil, err
		}
		summary = built
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	started := time.Now()
	e, err := u.evaluator.Evaluate(ctx, payload)
	if err != nil {
		log.Printf("[Report] evaluation for %s failed after %s: %v", userID, time.Since(started).Round(time.Millisecond), err)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apperr.Fail(msgEvaluateTimeout, err)
		}
		return nil, apperr.Fail(msgEvaluateFailed, err)
	}
	log.Printf("[Report] evaluation for %s via %s: %d", userID, e.Provider, e.OverallScore)
	return e, nil
}
