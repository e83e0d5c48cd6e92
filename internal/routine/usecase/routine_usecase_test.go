package usecase

import (
	"errors"
	"testing"
	"time"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/backing/backingtest"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/kv"
	"lifeops-backend/internal/provision"
	"lifeops-backend/internal/reference"
	"lifeops-backend/internal/routine/domain"
	"lifeops-backend/internal/routine/repository"
)

func newUsecase(t *testing.T) (RoutineUsecase, *backingtest.Fake, *provision.Workbooks, *time.Time) {
	t.Helper()
	fake := backingtest.New()
	workbooks := provision.NewWorkbooks(fake, fake, kv.NewMemoryBackend())
	now := time.Date(2026, 8, 3, 4, 0, 0, 0, time.UTC)
	clk := clock.Clock{Loc: time.UTC, Now: func() time.Time { return now }}
	return NewRoutineUsecase(repository.NewSheetRepository(fake, workbooks), clk), fake, workbooks, &now
}

func TestCheckUpsertsOneRowPerDay(t *testing.T) {
	u, fake, workbooks, now := newUsecase(t)
	ctx := backingtest.Context()

	c, err := u.Check(ctx, "u1", "r-11", true)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if c.ID != "r-11_2026-08-03" || c.CompletedAt == "" {
		t.Fatalf("check=%+v", c)
	}
	if _, err := u.Check(ctx, "u1", "r-11", false); err != nil {
		t.Fatalf("uncheck: %v", err)
	}

	id, _ := workbooks.For("u1").Spreadsheet(ctx)
	rows := fake.Rows(id, "루틴 기록")
	if len(rows) != 2 || rows[1][5] != "false" {
		t.Fatalf("rows=%v", rows)
	}

	*now = now.Add(24 * time.Hour)
	if _, err := u.Check(ctx, "u1", "r-11", true); err != nil {
		t.Fatalf("next day: %v", err)
	}
	if rows := fake.Rows(id, "루틴 기록"); len(rows) != 3 {
		t.Fatalf("rows=%d, want 3", len(rows))
	}
}

func TestTodayStats(t *testing.T) {
	u, _, _, _ := newUsecase(t)
	ctx := backingtest.Context()
	u.Check(ctx, "u1", "r-3", true)
	u.Check(ctx, "u1", "r-12", true)

	items, stats, err := u.Today(ctx, "u1", true)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if len(items) != len(reference.FixedRoutines) {
		t.Fatalf("items=%d", len(items))
	}
	if stats.Total != 11 || stats.Completed != 2 || stats.Percentage != 18 {
		t.Fatalf("stats=%+v", stats)
	}
	if !items[1].Completed || items[0].Completed {
		t.Fatalf("items[0:2]=%+v", items[:2])
	}
}

func TestUnknownRoutine(t *testing.T) {
	u, _, _, _ := newUsecase(t)
	if _, err := u.Check(backingtest.Context(), "u1", "r-99", true); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}

func TestPercent(t *testing.T) {
	if p := domain.Percent(0, 0); p != 0 {
		t.Fatalf("Percent(0,0)=%d", p)
	}
	if p := domain.Percent(1, 3); p != 33 {
		t.Fatalf("Percent(1,3)=%d", p)
	}
	if p := domain.Percent(2, 3); p != 67 {
		t.Fatalf("Percent(2,3)=%d", p)
	}
}
