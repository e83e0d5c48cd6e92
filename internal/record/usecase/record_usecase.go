package usecase

import (
	"context"
	"strings"

	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/record/domain"
	"lifeops-backend/internal/record/repository"

	"github.com/google/uuid"
)

type recordUsecase struct {
	repo  repository.RecordRepository
	clock clock.Clock
}

func NewRecordUsecase(repo repository.RecordRepository, clk clock.Clock) RecordUsecase {
	return &recordUsecase{repo: repo, clock: clk}
}

func (u *recordUsecase) List(ctx context.Context, userID, collection string, refresh bool) ([]domain.Record, error) {
	return u.repo.List(ctx, userID, collection, refresh)
}

func (u *recordUsecase) Create(ctx context.Context, userID, collection string, r domain.Record) (domain.Record, error) {
	cfg, err := u.repo.Config(collection)
	if err != nil {
		return nil, err
	}
	rec := r.Project(cfg.Headers)
	if strings.TrimSpace(rec["id"]) == "" {
		rec["id"] = uuid.New().String()
	}
	if _, ok := rec["date"]; ok && rec["date"] == "" {
		rec["date"] = u.clock.Today()
	}

	if err := u.repo.Create(ctx, userID, collection, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recordUsecase) Update(ctx context.Context, userID, collection, id string, patch domain.Record) (domain.Record, error) {
	cfg, err := u.repo.Config(collection)
	if err != nil {
		return nil, err
	}
	existing, err := u.repo.Find(ctx, userID, collection, id)
	if err != nil {
		return nil, err
	}
	rec := existing.Merge(patch, cfg.Headers)

	if err := u.repo.Update(ctx, userID, collection, id, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recordUsecase) Delete(ctx context.Context, userID, collection, id string) error {
	if _, err := u.repo.Config(collection); err != nil {
		return err
	}
	return u.repo.Delete(ctx, userID, collection, id)
}
