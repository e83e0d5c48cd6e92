package usecase

import (
	"context"
	"strings"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/bucket/domain"
	"lifeops-backend/internal/bucket/repository"
	"lifeops-backend/internal/clock"
)

type bucketUsecase struct {
	repo  repository.BucketRepository
	clock clock.Clock
}

// NewBucketUsecase creates a new instance of bucketUsecase
func NewBucketUsecase(repo repository.BucketRepository, clk clock.Clock) BucketUsecase {
	return &bucketUsecase{repo: repo, clock: clk}
}

func (u *bucketUsecase) List(ctx context.Context, userID string, refresh bool) ([]domain.BucketItem, error) {
	return u.repo.List(ctx, userID, refresh)
}

func (u *bucketUsecase) Create(ctx context.Context, userID, title string, category domain.Category) (*domain.BucketItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Invalid("title is required")
	}
	if category == "" {
		category = domain.CategoryOther
	}
	if !category.Valid() {
		return nil, apperr.Invalid("unknown category %q", category)
	}

	item := domain.BucketItem{
		ID:        "bucket_" + u.clock.Millis(),
		Title:     title,
		Category:  category,
		Status:    domain.StatusTodo,
		CreatedAt: u.clock.Today(),
	}
	if err := u.repo.Create(ctx, userID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (u *bucketUsecase) UpdateStatus(ctx context.Context, userID, id string, status domain.Status) error {
	if !status.Valid() {
		return apperr.Invalid("unknown status %q", status)
	}
	return u.repo.UpdateStatus(ctx, userID, id, status)
}

func (u *bucketUsecase) Delete(ctx context.Context, userID, id string) error {
	return u.repo.Delete(ctx, userID, id)
}
