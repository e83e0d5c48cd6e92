package usecase

import (
	"context"
	"errors"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/reference"
	"lifeops-backend/internal/routine/domain"
	"lifeops-backend/internal/routine/repository"
	"lifeops-backend/internal/sheetstore"
)

type routineUsecase struct {
	repo  repository.CheckRepository
	clock clock.Clock
}

func NewRoutineUsecase(repo repository.CheckRepository, clk clock.Clock) RoutineUsecase {
	return &routineUsecase{repo: repo, clock: clk}
}

func (u *routineUsecase) Today(ctx context.Context, userID string, refresh bool) ([]domain.Item, domain.Stats, error) {
	checks, err := u.repo.List(ctx, userID, refresh)
	if err != nil {
		return nil, domain.Stats{}, err
	}
	items := domain.Checklist(reference.FixedRoutines, checks, u.clock.Today())
	return items, domain.Summarize(items), nil
}

// Check upserts the day's log row
func (u *routineUsecase) Check(ctx context.Context, userID, routineID string, completed bool) (*domain.Check, error) {
	r, ok := reference.FindRoutine(routineID)
	if !ok {
		return nil, apperr.Invalid("unknown routine %q", routineID)
	}
	today := u.clock.Today()
	c := domain.Check{
		ID:        domain.CheckID(r.ID, today),
		RoutineID: r.ID,
		Label:     r.Label,
		Detail:    r.Detail,
		Date:      today,
		Completed: completed,
	}
	if completed {
		c.CompletedAt = u.clock.Timestamp()
	}

	_, err := u.repo.Find(ctx, userID, c.ID)
	switch {
	case err == nil:
		err = u.repo.Update(ctx, userID, c.ID, c)
	case errors.Is(err, sheetstore.ErrNotFound):
		err = u.repo.Create(ctx, userID, c)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
