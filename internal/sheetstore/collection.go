package sheetstore

import (
	"context"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"
)

// Collection serves one tab for every user, keeping one Store per user
type Collection[T any] struct {
	pool *Pool[T]
}

// NewCollection binds a tab of each user's workbook to mapper
func NewCollection[T any](sheets backing.Spreadsheets, workbooks *provision.Workbooks, cfg provision.SheetConfig, mapper RowMapper[T]) *Collection[T] {
	return &Collection[T]{
		pool: NewPool(func(userID string) *Store[T] {
			return New[T](sheets, workbooks.For(userID), cfg, mapper)
		}),
	}
}

// Store returns the user's store
func (c *Collection[T]) Store(userID string) *Store[T] {
	return c.pool.For(userID)
}

// List returns the user's rows; refresh forces a re-read
func (c *Collection[T]) List(ctx context.Context, userID string, refresh bool) ([]T, error) {
	s := c.pool.For(userID)
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

// Find looks id up in the user's loaded rows. Lookups precede updates, so a
// miss reports the update failure message without touching the store's state.
func (c *Collection[T]) Find(ctx context.Context, userID, id string) (T, error) {
	s := c.pool.For(userID)
	var zero T
	if err := s.EnsureLoaded(ctx); err != nil {
		return zero, err
	}
	item, ok := s.Find(id)
	if !ok {
		return zero, NotFound(MsgUpdateFailed, id)
	}
	return item, nil
}

func (c *Collection[T]) Create(ctx context.Context, userID string, item T) error {
	s := c.pool.For(userID)
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	return s.Add(ctx, item)
}

func (c *Collection[T]) Update(ctx context.Context, userID, id string, item T) error {
	return c.pool.For(userID).Update(ctx, id, item)
}

func (c *Collection[T]) Delete(ctx context.Context, userID, id string) error {
	return c.pool.For(userID).Delete(ctx, id)
}
