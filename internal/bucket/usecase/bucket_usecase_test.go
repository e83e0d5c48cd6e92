package usecase

import (
	"errors"
	"testing"
	"time"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/backing/backingtest"
	"lifeops-backend/internal/bucket/domain"
	"lifeops-backend/internal/bucket/repository"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/docstore"
	"lifeops-backend/internal/kv"
	"lifeops-backend/internal/provision"
)

func newUsecase(t *testing.T) (BucketUsecase, *backingtest.Fake) {
	t.Helper()
	fake := backingtest.New()
	workbooks := provision.NewWorkbooks(fake, fake, kv.NewMemoryBackend())
	at := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	return NewBucketUsecase(repository.NewDocumentRepository(fake, fake, workbooks), clock.Fixed(at)), fake
}

func TestCreateStoresTodoItemInDocument(t *testing.T) {
	u, fake := newUsecase(t)
	ctx := backingtest.Context()

	item, err := u.Create(ctx, "u1", "  오로라 보기 🌌 ", domain.CategoryTravel)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Status != domain.StatusTodo || item.CreatedAt != "2026-03-07" || item.Title != "오로라 보기 🌌" {
		t.Fatalf("item=%+v", item)
	}
	if item.ID != "bucket_1772877600000" {
		t.Fatalf("ID=%s", item.ID)
	}
	if n := fake.CountFiles(backing.MimeDocument); n != 1 {
		t.Fatalf("documents=%d, want 1", n)
	}

	items, err := u.List(ctx, "u1", true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0] != *item {
		t.Fatalf("items=%v", items)
	}
}

func TestCreateDefaultsCategory(t *testing.T) {
	u, _ := newUsecase(t)
	item, err := u.Create(backingtest.Context(), "u1", "책 100권", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Category != domain.CategoryOther {
		t.Fatalf("Category=%s, want 기타", item.Category)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	u, _ := newUsecase(t)
	ctx := backingtest.Context()
	if _, err := u.Create(ctx, "u1", "   ", domain.CategoryTravel); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("blank title err=%v, want ErrInvalid", err)
	}
	if _, err := u.Create(ctx, "u1", "x", "우주"); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("bad category err=%v, want ErrInvalid", err)
	}
}

func TestUpdateStatusAndDelete(t *testing.T) {
	u, _ := newUsecase(t)
	ctx := backingtest.Context()
	item, _ := u.Create(ctx, "u1", "마라톤 완주", domain.CategoryHealth)

	if err := u.UpdateStatus(ctx, "u1", item.ID, "done"); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
	if err := u.UpdateStatus(ctx, "u1", item.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	items, _ := u.List(ctx, "u1", true)
	if s := domain.Summarize(items); s.Completed != 1 || s.Total != 1 {
		t.Fatalf("stats=%+v", s)
	}

	if err := u.Delete(ctx, "u1", "bucket_0"); !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if err := u.Delete(ctx, "u1", item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if items, _ := u.List(ctx, "u1", true); len(items) != 0 {
		t.Fatalf("items=%v, want empty", items)
	}
}

func TestListEmptyAndUnauthorized(t *testing.T) {
	u, fake := newUsecase(t)
	items, err := u.List(backingtest.Context(), "u1", false)
	if err != nil || len(items) != 0 {
		t.Fatalf("items=%v err=%v", items, err)
	}
	fake.Unauthorized = true
	items, err = u.List(backingtest.Context(), "u2", true)
	if err != nil || len(items) != 0 {
		t.Fatalf("unauthorized items=%v err=%v", items, err)
	}
}
