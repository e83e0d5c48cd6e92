package usecase

import (
	"context"
	"strings"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/weakpoint/domain"
	"lifeops-backend/internal/weakpoint/repository"
)

type weakPointUsecase struct {
	repo  repository.WeakPointRepository
	clock clock.Clock
}

func NewWeakPointUsecase(repo repository.WeakPointRepository, clk clock.Clock) WeakPointUsecase {
	return &weakPointUsecase{repo: repo, clock: clk}
}

func (u *weakPointUsecase) List(ctx context.Context, userID string, category domain.Category, refresh bool) ([]domain.WeakPoint, error) {
	if category != "" && !category.Valid() {
		return nil, apperr.Invalid("unknown category %q", category)
	}
	items, err := u.repo.List(ctx, userID, refresh)
	if err != nil {
		return nil, err
	}
	return domain.FilterByCategory(items, category), nil
}

func (u *weakPointUsecase) Create(ctx context.Context, userID string, input domain.WeakPoint) (*domain.WeakPoint, error) {
	w, err := clean(input)
	if err != nil {
		return nil, err
	}
	w.ID = u.clock.Millis()
	w.Status = domain.StatusNotStarted
	w.AcquiredDate = ""

	if err := u.repo.Create(ctx, userID, w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (u *weakPointUsecase) Update(ctx context.Context, userID, id string, input domain.WeakPoint) (*domain.WeakPoint, error) {
	existing, err := u.repo.Find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	w, err := clean(input)
	if err != nil {
		return nil, err
	}
	w.ID = existing.ID
	w.Status = existing.Status
	w.AcquiredDate = existing.AcquiredDate

	if err := u.repo.Update(ctx, userID, id, w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (u *weakPointUsecase) SetStatus(ctx context.Context, userID, id string, status domain.Status) (*domain.WeakPoint, error) {
	if !status.Valid() {
		return nil, apperr.Invalid("unknown status %q", status)
	}
	w, err := u.repo.Find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	w = w.WithStatus(status, u.clock.Today())

	if err := u.repo.Update(ctx, userID, id, w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (u *weakPointUsecase) Delete(ctx context.Context, userID, id string) error {
	return u.repo.Delete(ctx, userID, id)
}

func clean(w domain.WeakPoint) (domain.WeakPoint, error) {
	w.Name = strings.TrimSpace(w.Name)
	w.CurrentLevel = strings.TrimSpace(w.CurrentLevel)
	w.TargetLevel = strings.TrimSpace(w.TargetLevel)
	w.Notes = strings.TrimSpace(w.Notes)
	if w.Name == "" {
		return w, apperr.Invalid("name is required")
	}
	if w.Category == "" {
		w.Category = domain.CategoryEtc
	}
	if !w.Category.Valid() {
		return w, apperr.Invalid("unknown category %q", w.Category)
	}
	return w, nil
}
