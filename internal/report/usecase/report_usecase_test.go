package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/clock"
	companydomain "lifeops-backend/internal/company/domain"
	companyusecase "lifeops-backend/internal/company/usecase"
	"lifeops-backend/internal/report/domain"
	routinedomain "lifeops-backend/internal/routine/domain"
	routineusecase "lifeops-backend/internal/routine/usecase"
	taskdomain "lifeops-backend/internal/task/domain"
	taskusecase "lifeops-backend/internal/task/usecase"
	"lifeops-backend/pkg/ai"

	"github.com/tidwall/gjson"
)

type stubCompanies struct {
	companyusecase.CompanyUsecase
	items []companydomain.AppliedCompany
}

func (s stubCompanies) List(ctx context.Context, userID string, status companydomain.Status, refresh bool) ([]companydomain.AppliedCompany, error) {
	return s.items, nil
}

type stubRoutines struct {
	routineusecase.RoutineUsecase
	stats routinedomain.Stats
	err   error
}

func (s stubRoutines) Today(ctx context.Context, userID string, refresh bool) ([]routinedomain.Item, routinedomain.Stats, error) {
	return nil, s.stats, s.err
}

type stubTasks struct {
	taskusecase.TaskUsecase
	items []taskdomain.Task
}

func (s stubTasks) Today(ctx context.Context, userID string, refresh bool) ([]taskdomain.Task, error) {
	return s.items, nil
}

type stubEvaluator struct {
	payload []byte
	block   bool
	err     error
}

func (s *stubEvaluator) Name() string { return "stub" }

func (s *stubEvaluator) Evaluate(ctx context.Context, summary []byte) (*ai.Evaluation, error) {
	s.payload = summary
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return &ai.Evaluation{OverallScore: 82, Label: ai.ScoreLabel(82), Provider: "stub"}, nil
}

func newUsecase(eval ai.Evaluator, timeout time.Duration) ReportUsecase {
	companies := stubCompanies{items: []companydomain.AppliedCompany{
		{ID: "1", Status: companydomain.StatusInterview1},
		{ID: "2", Status: companydomain.StatusRejected},
	}}
	routines := stubRoutines{stats: routinedomain.Stats{Total: 11, Completed: 2, Percentage: 18}}
	tasks := stubTasks{items: []taskdomain.Task{{ID: "t1", Completed: true}, {ID: "t2"}}}
	clk := clock.Fixed(time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC))
	return NewReportUsecase(companies, routines, tasks, eval, timeout, clk)
}

func TestDashboard(t *testing.T) {
	u := newUsecase(nil, 0)
	s, err := u.Dashboard(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if s.JobSearch.TotalApplied != 2 || s.JobSearch.InProgress != 1 || s.JobSearch.Rejected != 1 {
		t.Fatalf("jobSearch=%+v", s.JobSearch)
	}
	if s.Routine.Percentage != 18 || s.Routine.TaskTotal != 2 || s.Routine.TaskIncomplete != 1 {
		t.Fatalf("routine=%+v", s.Routine)
	}
	if s.GeneratedAt != "2026-04-10T09:00:00.000Z" {
		t.Fatalf("generatedAt=%q", s.GeneratedAt)
	}
}

func TestDashboardPropagatesErrors(t *testing.T) {
	u := NewReportUsecase(stubCompanies{}, stubRoutines{err: apperr.ErrSignedOut}, stubTasks{}, nil, 0, clock.Fixed(time.Now()))
	if _, err := u.Dashboard(context.Background(), "u1", false); !errors.Is(err, apperr.ErrSignedOut) {
		t.Fatalf("err=%v, want ErrSignedOut", err)
	}
}

func TestEvaluateBuildsSummary(t *testing.T) {
	eval := &stubEvaluator{}
	e, err := newUsecase(eval, time.Second).Evaluate(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if e.OverallScore != 82 || e.Label != "양호" {
		t.Fatalf("evaluation=%+v", e)
	}
	if got := gjson.GetBytes(eval.payload, "jobSearch.totalApplied").Int(); got != 2 {
		t.Fatalf("payload totalApplied=%d, want 2", got)
	}
}

func TestEvaluateUsesGivenSummary(t *testing.T) {
	eval := &stubEvaluator{}
	given := &domain.DashboardSummary{JobSearch: domain.JobSearchSummary{TotalApplied: 40}}
	if _, err := newUsecase(eval, time.Second).Evaluate(context.Background(), "u1", given); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got := gjson.GetBytes(eval.payload, "jobSearch.totalApplied").Int(); got != 40 {
		t.Fatalf("payload totalApplied=%d, want 40", got)
	}
}

func TestEvaluateTimeout(t *testing.T) {
	_, err := newUsecase(&stubEvaluator{block: true}, 20*time.Millisecond).Evaluate(context.Background(), "u1", nil)
	if err == nil || apperr.Message(err) != msgEvaluateTimeout {
		t.Fatalf("err=%v, want timeout failure", err)
	}
}

func TestEvaluateFailures(t *testing.T) {
	_, err := newUsecase(&stubEvaluator{err: errors.New("quota")}, time.Second).Evaluate(context.Background(), "u1", nil)
	if err == nil || apperr.Message(err) != msgEvaluateFailed {
		t.Fatalf("err=%v, want evaluation failure", err)
	}
	if _, err := newUsecase(nil, time.Second).Evaluate(context.Background(), "u1", nil); err == nil {
		t.Fatalf("Evaluate without evaluator succeeded")
	}
}
