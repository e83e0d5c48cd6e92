package usecase

import (
	"errors"
	"testing"
	"time"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/backing/backingtest"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/company/domain"
	"lifeops-backend/internal/company/repository"
	"lifeops-backend/internal/kv"
	"lifeops-backend/internal/provision"
)

func newUsecase(t *testing.T) (CompanyUsecase, *time.Time) {
	t.Helper()
	fake := backingtest.New()
	workbooks := provision.NewWorkbooks(fake, fake, kv.NewMemoryBackend())
	now := time.Date(2026, 2, 6, 1, 0, 0, 0, time.UTC)
	clk := clock.Clock{Loc: time.UTC, Now: func() time.Time { return now }}
	return NewCompanyUsecase(repository.NewSheetRepository(fake, workbooks), clk), &now
}

func TestCreateStartsApplied(t *testing.T) {
	u, _ := newUsecase(t)
	ctx := backingtest.Context()

	c, err := u.Create(ctx, "u1", domain.AppliedCompany{CompanyName: " 라인정보통신 ", Position: "웹 개발자", Status: domain.StatusOffer})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Status != domain.StatusApplied || c.AppliedDate != "2026-02-06" || c.CompanyName != "라인정보통신" {
		t.Fatalf("company=%+v", c)
	}

	items, err := u.List(ctx, "u1", "", true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0] != *c {
		t.Fatalf("items=%+v", items)
	}

	if _, err := u.Create(ctx, "u1", domain.AppliedCompany{}); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}

func TestStatusGraphAndFilter(t *testing.T) {
	u, now := newUsecase(t)
	ctx := backingtest.Context()

	a, _ := u.Create(ctx, "u1", domain.AppliedCompany{CompanyName: "A"})
	*now = now.Add(time.Millisecond)
	b, _ := u.Create(ctx, "u1", domain.AppliedCompany{CompanyName: "B"})
	*now = now.Add(time.Millisecond)
	c, _ := u.Create(ctx, "u1", domain.AppliedCompany{CompanyName: "C"})

	if _, err := u.ChangeStatus(ctx, "u1", b.ID, domain.StatusOffer); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("skip to offer err=%v, want ErrInvalid", err)
	}
	if _, err := u.ChangeStatus(ctx, "u1", b.ID, domain.StatusDocument); err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}

	applied, err := u.List(ctx, "u1", domain.StatusApplied, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(applied) != 2 {
		t.Fatalf("applied=%v", applied)
	}
	all, _ := u.List(ctx, "u1", "", false)
	var order []string
	for _, x := range all {
		if x.Status == domain.StatusApplied {
			order = append(order, x.ID)
		}
	}
	if applied[0].ID != order[0] || applied[1].ID != order[1] {
		t.Fatalf("filter order=%v, want %v", applied, order)
	}
	for _, x := range applied {
		if x.ID != a.ID && x.ID != c.ID {
			t.Fatalf("unexpected %s", x.ID)
		}
	}

	st, _ := u.Stats(ctx, "u1")
	if st.Total != 3 || st.InProgress != 1 {
		t.Fatalf("stats=%+v", st)
	}

	if _, err := u.List(ctx, "u1", "hired", false); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}

func TestUpdateKeepsStatus(t *testing.T) {
	u, _ := newUsecase(t)
	ctx := backingtest.Context()
	c, _ := u.Create(ctx, "u1", domain.AppliedCompany{CompanyName: "현대오토에버"})
	u.ChangeStatus(ctx, "u1", c.ID, domain.StatusRejected)

	updated, err := u.Update(ctx, "u1", c.ID, domain.AppliedCompany{CompanyName: "현대오토에버", Result: "서류불합격", Status: domain.StatusOffer})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.StatusRejected || updated.Result != "서류불합격" {
		t.Fatalf("updated=%+v", updated)
	}

	if err := u.Delete(ctx, "u1", c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if items, _ := u.List(ctx, "u1", "", true); len(items) != 0 {
		t.Fatalf("items=%v", items)
	}
}
