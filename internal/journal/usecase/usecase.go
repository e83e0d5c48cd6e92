package usecase

import (
	"context"
	"strings"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/journal/domain"
	"lifeops-backend/internal/journal/repository"
)

// JournalUsecase defines the interface for study journal logic
type JournalUsecase interface {
	List(ctx context.Context, userID string, refresh bool) ([]domain.Entry, error)
	Create(ctx context.Context, userID, title, content string) (*domain.Entry, error)
	Delete(ctx context.Context, userID, id string) error
}

type journalUsecase struct {
	repo  repository.JournalRepository
	clock clock.Clock
}

func NewJournalUsecase(repo repository.JournalRepository, clk clock.Clock) JournalUsecase {
	return &journalUsecase{repo: repo, clock: clk}
}

func (u *journalUsecase) List(ctx context.Context, userID string, refresh bool) ([]domain.Entry, error) {
	return u.repo.List(ctx, userID, refresh)
}

func (u *journalUsecase) Create(ctx context.Context, userID, title, content string) (*domain.Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Invalid("title is required")
	}
	entry := domain.Entry{
		ID:        "study_" + u.clock.Millis(),
		Title:     title,
		Content:   content,
		CreatedAt: u.clock.Timestamp(),
	}
	if err := u.repo.Create(ctx, userID, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (u *journalUsecase) Delete(ctx context.Context, userID, id string) error {
	return u.repo.Delete(ctx, userID, id)
}
