package repository

import (
	"context"

	"lifeops-backend/internal/apikey/domain"
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"
	"lifeops-backend/internal/sheetstore"
)

type apiKeyMapper struct{}

func (apiKeyMapper) ID(k domain.ApiKey) string { return k.ID }

func (apiKeyMapper) ToRow(k domain.ApiKey) []string {
	return []string{k.ID, k.ServiceName, k.KeyName, k.APIKey, k.Description, k.CreatedAt, k.UpdatedAt}
}

func (apiKeyMapper) FromRow(row, _ []string) domain.ApiKey {
	return domain.ApiKey{
		ID:          sheetstore.Cell(row, 0),
		ServiceName: sheetstore.Cell(row, 1),
		KeyName:     sheetstore.Cell(row, 2),
		APIKey:      sheetstore.Cell(row, 3),
		Description: sheetstore.Cell(row, 4),
		CreatedAt:   sheetstore.Cell(row, 5),
		UpdatedAt:   sheetstore.Cell(row, 6),
	}
}

type sheetRepository struct {
	pool *sheetstore.Pool[domain.ApiKey]
}

// NewSheetRepository keeps each user's keys in their vault spreadsheet
func NewSheetRepository(sheets backing.Spreadsheets, files backing.Files, workbooks *provision.Workbooks) ApiKeyRepository {
	return &sheetRepository{
		pool: sheetstore.NewPool(func(userID string) *sheetstore.Store[domain.ApiKey] {
			loc := &vaultLocator{resolver: workbooks.Resolver(userID), sheets: sheets, files: files}
			return sheetstore.New[domain.ApiKey](sheets, loc, Sheet, apiKeyMapper{})
		}),
	}
}

func (r *sheetRepository) List(ctx context.Context, userID string, refresh bool) ([]domain.ApiKey, error) {
	s := r.pool.For(userID)
	var err error
	if refresh {
		err = s.Refresh(ctx)
	} else {
		err = s.EnsureLoaded(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s.Data(), nil
}

func (r *sheetRepository) Find(ctx context.Context, userID, id string) (*domain.ApiKey, error) {
	s := r.pool.For(userID)
	if err := s.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	k, ok := s.Find(id)
	if !ok {
		return nil, sheetstore.NotFound(sheetstore.MsgUpdateFailed, id)
	}
	return &k, nil
}

func (r *sheetRepository) Create(ctx context.Context, userID string, key domain.ApiKey) error {
	s := r.pool.For(userID)
	if err := s.Add(ctx, key); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (r *sheetRepository) Update(ctx context.Context, userID string, key domain.ApiKey) error {
	s := r.pool.For(userID)
	if err := s.Update(ctx, key.ID, key); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (r *sheetRepository) Delete(ctx context.Context, userID, id string) error {
	s := r.pool.For(userID)
	if err := s.Delete(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
