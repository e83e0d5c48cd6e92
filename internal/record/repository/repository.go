package repository

import (
	"context"
	"fmt"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"
	"lifeops-backend/internal/record/domain"
	"lifeops-backend/internal/sheetstore"
)

// RecordRepository is generic CRUD over the workbook tabs
type RecordRepository interface {
	// Config returns the tab for a collection key
	Config(collection string) (provision.SheetConfig, error)
	List(ctx context.Context, userID, collection string, refresh bool) ([]domain.Record, error)
	Find(ctx context.Context, userID, collection, id string) (domain.Record, error)
	Create(ctx context.Context, userID, collection string, r domain.Record) error
	Update(ctx context.Context, userID, collection, id string, r domain.Record) error
	Delete(ctx context.Context, userID, collection, id string) error
}

type recordMapper struct {
	headers []string
}

func (m recordMapper) ID(r domain.Record) string { return r.ID() }

func (m recordMapper) ToRow(r domain.Record) []string {
	row := make([]string, len(m.headers))
	for i, h := range m.headers {
		row[i] = r[h]
	}
	return row
}

func (m recordMapper) FromRow(row, headers []string) domain.Record {
	return domain.Record(sheetstore.Fields(row, headers))
}

type sheetRepository struct {
	collections map[string]*sheetstore.Collection[domain.Record]
}

// NewSheetRepository binds a collection to every tab of the workbook
func NewSheetRepository(sheets backing.Spreadsheets, workbooks *provision.Workbooks) RecordRepository {
	r := &sheetRepository{collections: make(map[string]*sheetstore.Collection[domain.Record], len(provision.Tabs))}
	for _, cfg := range provision.Tabs {
		r.collections[cfg.Key] = sheetstore.NewCollection[domain.Record](sheets, workbooks, cfg, recordMapper{headers: cfg.Headers})
	}
	return r
}

func (r *sheetRepository) Config(collection string) (provision.SheetConfig, error) {
	cfg, ok := provision.Tab(collection)
	if !ok {
		return cfg, apperr.Invalid("unknown collection %q", collection)
	}
	return cfg, nil
}

func (r *sheetRepository) collection(key string) (*sheetstore.Collection[domain.Record], error) {
	c, ok := r.collections[key]
	if !ok {
		return nil, apperr.Invalid("unknown collection %q", key)
	}
	return c, nil
}

func (r *sheetRepository) List(ctx context.Context, userID, collection string, refresh bool) ([]domain.Record, error) {
	c, err := r.collection(collection)
	if err != nil {
		return nil, err
	}
	return c.List(ctx, userID, refresh)
}

func (r *sheetRepository) Find(ctx context.Context, userID, collection, id string) (domain.Record, error) {
	c, err := r.collection(collection)
	if err != nil {
		return nil, err
	}
	rec, err := c.Find(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", collection, err)
	}
	return rec, nil
}

func (r *sheetRepository) Create(ctx context.Context, userID, collection string, rec domain.Record) error {
	c, err := r.collection(collection)
	if err != nil {
		return err
	}
	return c.Create(ctx, userID, rec)
}

func (r *sheetRepository) Update(ctx context.Context, userID, collection, id string, rec domain.Record) error {
	c, err := r.collection(collection)
	if err != nil {
		return err
	}
	return c.Update(ctx, userID, id, rec)
}

func (r *sheetRepository) Delete(ctx context.Context, userID, collection, id string) error {
	c, err := r.collection(collection)
	if err != nil {
		return err
	}
	return c.Delete(ctx, userID, id)
}
