package usecase

import (
	"context"
	"strings"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/company/domain"
	"lifeops-backend/internal/company/repository"
)

type companyUsecase struct {
	repo  repository.CompanyRepository
	clock clock.Clock
}

func NewCompanyUsecase(repo repository.CompanyRepository, clk clock.Clock) CompanyUsecase {
	return &companyUsecase{repo: repo, clock: clk}
}

func (u *companyUsecase) List(ctx context.Context, userID string, status domain.Status, refresh bool) ([]domain.AppliedCompany, error) {
	if status != "" && !status.Valid() {
		return nil, apperr.Invalid("unknown status %q", status)
	}
	items, err := u.repo.List(ctx, userID, refresh)
	if err != nil {
		return nil, err
	}
	return domain.FilterByStatus(items, status), nil
}

func (u *companyUsecase) Stats(ctx context.Context, userID string) (domain.Stats, error) {
	items, err := u.repo.List(ctx, userID, false)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Summarize(items), nil
}

func (u *companyUsecase) Create(ctx context.Context, userID string, input domain.AppliedCompany) (*domain.AppliedCompany, error) {
	c := trim(input)
	if c.CompanyName == "" {
		return nil, apperr.Invalid("companyName is required")
	}
	c.ID = u.clock.Millis()
	c.Status = domain.StatusApplied
	c.Result = ""
	if c.AppliedDate == "" {
		c.AppliedDate = u.clock.Today()
	}

	if err := u.repo.Create(ctx, userID, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (u *companyUsecase) Update(ctx context.Context, userID, id string, input domain.AppliedCompany) (*domain.AppliedCompany, error) {
	existing, err := u.repo.Find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	c := trim(input)
	if c.CompanyName == "" {
		return nil, apperr.Invalid("companyName is required")
	}
	c.ID = existing.ID
	c.Status = existing.Status

	if err := u.repo.Update(ctx, userID, id, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (u *companyUsecase) ChangeStatus(ctx context.Context, userID, id string, status domain.Status) (*domain.AppliedCompany, error) {
	if !status.Valid() {
		return nil, apperr.Invalid("unknown status %q", status)
	}
	c, err := u.repo.Find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(c.Status, status) {
		return nil, apperr.Invalid("cannot move from %s to %s", c.Status, status)
	}
	c.Status = status

	if err := u.repo.Update(ctx, userID, id, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (u *companyUsecase) Delete(ctx context.Context, userID, id string) error {
	return u.repo.Delete(ctx, userID, id)
}

func trim(c domain.AppliedCompany) domain.AppliedCompany {
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	c.Position = strings.TrimSpace(c.Position)
	c.Notes = strings.TrimSpace(c.Notes)
	c.Result = strings.TrimSpace(c.Result)
	c.URL = strings.TrimSpace(c.URL)
	return c
}
