// Package sheetstore maps a typed collection onto the rows of one spreadsheet
// tab. Each Store holds its own copy of the collection, the way a single
// client session would; stores never coordinate with each other.
package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"
)

var (
	// ErrNotFound is wrapped by Update, Delete and Find when no row carries the id
	ErrNotFound = errors.New("sheetstore: item not found")
	// ErrSignedOut is returned by mutations without an access token
	ErrSignedOut = fmt.Errorf("sheetstore: %w", apperr.ErrSignedOut)
)

// Locator resolves the spreadsheet a store writes to
type Locator interface {
	Spreadsheet(ctx context.Context) (string, error)
}

// Snapshot is a consistent copy of a store's state
type Snapshot[T any] struct {
	Data          []T    `json:"data"`
	IsLoading     bool   `json:"isLoading"`
	IsSaving      bool   `json:"isSaving"`
	Error         string `json:"error,omitempty"`
	SpreadsheetID string `json:"spreadsheetId,omitempty"`
}

// Store is a sheet-backed collection
type Store[T any] struct {
	sheets  backing.Spreadsheets
	locator Locator
	cfg     provision.SheetConfig
	mapper  RowMapper[T]

	// mu guards the fields below and is never held across a network call,
	// so the find-row/mutate-row sequences are not atomic.
	mu            sync.RWMutex
	data          []T
	loading       bool
	saving        bool
	errMsg        string
	loaded        bool
	spreadsheetID string
}

// New creates a store for one tab
func New[T any](sheets backing.Spreadsheets, locator Locator, cfg provision.SheetConfig, mapper RowMapper[T]) *Store[T] {
	return &Store[T]{
		sheets:  sheets,
		locator: locator,
		cfg:     cfg,
		mapper:  mapper,
		data:    []T{},
	}
}

// Config returns the tab this store is bound to
func (s *Store[T]) Config() provision.SheetConfig {
	return s.cfg
}

// Load resolves the spreadsheet, ensures the tab and header row, and
// republishes every data row. A signed-out context or an authorization lapse
// yields an empty collection and no error.
func (s *Store[T]) Load(ctx context.Context) error {
	if backing.AccessToken(ctx) == "" {
		s.reset()
		return nil
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	id, err := s.prepare(ctx)
	if err != nil {
		if backing.IsUnauthorized(err) {
			s.reset()
			return nil
		}
		return s.fail(MsgSpreadsheetNotFound, err)
	}

	rows, err := s.sheets.Values(ctx, id, backing.SheetRange(s.cfg.Title, ""))
	if err != nil {
		if backing.IsUnauthorized(err) {
			s.reset()
			return nil
		}
		return s.fail(MsgLoadFailed, fmt.Errorf("unable to read %s: %w", s.cfg.Title, err))
	}

	items := make([]T, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		items = append(items, s.mapper.FromRow(row, s.cfg.Headers))
	}

	s.mu.Lock()
	s.data = items
	s.errMsg = ""
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Refresh reloads from the backing sheet
func (s *Store[T]) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// EnsureLoaded loads once; later calls serve the in-memory copy
func (s *Store[T]) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded && backing.AccessToken(ctx) != "" {
		return nil
	}
	return s.Load(ctx)
}

// Add appends the item's row and prepends it locally without re-fetching
func (s *Store[T]) Add(ctx context.Context, item T) error {
	if backing.AccessToken(ctx) == "" {
		return ErrSignedOut
	}
	defer s.beginSave()()

	id, err := s.target(ctx)
	if err != nil {
		return s.fail(MsgAddFailed, err)
	}
	row := s.mapper.ToRow(item)
	if err := s.sheets.AppendValues(ctx, id, backing.SheetRange(s.cfg.Title, "A:A"), [][]string{row}); err != nil {
		return s.fail(MsgAddFailed, fmt.Errorf("unable to append to %s: %w", s.cfg.Title, err))
	}

	s.mu.Lock()
	s.data = append([]T{item}, s.data...)
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

// Update re-reads the tab, finds the row whose first cell is id by linear
// scan, and overwrites it. An unknown id fails like any other update. A concurrent writer that reorders rows between the
// read and the write makes this overwrite the wrong row.
func (s *Store[T]) Update(ctx context.Context, id string, item T) error {
	if backing.AccessToken(ctx) == "" {
		return ErrSignedOut
	}
	defer s.beginSave()()

	spreadsheetID, err := s.target(ctx)
	if err != nil {
		return s.fail(MsgUpdateFailed, err)
	}
	idx, err := s.findRow(ctx, spreadsheetID, id)
	if err != nil {
		return s.fail(MsgUpdateFailed, err)
	}
	if idx < 0 {
		return s.fail(MsgUpdateFailed, notFound(id))
	}

	rng := backing.SheetRange(s.cfg.Title, fmt.Sprintf("A%d", idx+1))
	if err := s.sheets.UpdateValues(ctx, spreadsheetID, rng, [][]string{s.mapper.ToRow(item)}); err != nil {
		return s.fail(MsgUpdateFailed, fmt.Errorf("unable to update row %d of %s: %w", idx+1, s.cfg.Title, err))
	}

	s.mu.Lock()
	for i := range s.data {
		if s.mapper.ID(s.data[i]) == id {
			s.data[i] = item
		}
	}
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

// Delete resolves the tab's numeric id, finds the row by linear scan and
// removes it
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if backing.AccessToken(ctx) == "" {
		return ErrSignedOut
	}
	defer s.beginSave()()

	spreadsheetID, err := s.target(ctx)
	if err != nil {
		return s.fail(MsgDeleteFailed, err)
	}
	sheetID, err := s.sheetID(ctx, spreadsheetID)
	if err != nil {
		return s.fail(MsgDeleteFailed, err)
	}
	idx, err := s.findRow(ctx, spreadsheetID, id)
	if err != nil {
		return s.fail(MsgDeleteFailed, err)
	}
	if idx < 0 {
		return s.fail(MsgDeleteFailed, notFound(id))
	}

	if err := s.sheets.DeleteRows(ctx, spreadsheetID, sheetID, int64(idx), int64(idx+1)); err != nil {
		return s.fail(MsgDeleteFailed, fmt.Errorf("unable to delete row %d of %s: %w", idx+1, s.cfg.Title, err))
	}

	s.mu.Lock()
	kept := make([]T, 0, len(s.data))
	for _, d := range s.data {
		if s.mapper.ID(d) != id {
			kept = append(kept, d)
		}
	}
	s.data = kept
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

// Find returns the in-memory item with the given id
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.data {
		if s.mapper.ID(d) == id {
			return d, true
		}
	}
	var zero T
	return zero, false
}

// Data returns a copy of the collection in backing-store order
func (s *Store[T]) Data() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T{}, s.data...)
}

// Snapshot returns the collection together with its status flags
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[T]{
		Data:          append([]T{}, s.data...),
		IsLoading:     s.loading,
		IsSaving:      s.saving,
		Error:         s.errMsg,
		SpreadsheetID: s.spreadsheetID,
	}
}

// Err is the last user-facing failure message, or ""
func (s *Store[T]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Store[T]) prepare(ctx context.Context) (string, error) {
	id, err := s.locator.Spreadsheet(ctx)
	if err != nil {
		return "", err
	}
	if err := provision.EnsureSheet(ctx, s.sheets, id, s.cfg); err != nil {
		return "", err
	}
	s.mu.Lock()
	s.spreadsheetID = id
	s.mu.Unlock()
	return id, nil
}

// target reuses the spreadsheet resolved by the last load
func (s *Store[T]) target(ctx context.Context) (string, error) {
	s.mu.RLock()
	id := s.spreadsheetID
	s.mu.RUnlock()
	if id != "" {
		return id, nil
	}
	return s.prepare(ctx)
}

// findRow returns the zero-based index of the row whose first cell is id,
// skipping the header row, or -1
func (s *Store[T]) findRow(ctx context.Context, spreadsheetID, id string) (int, error) {
	rows, err := s.sheets.Values(ctx, spreadsheetID, backing.SheetRange(s.cfg.Title, ""))
	if err != nil {
		return -1, fmt.Errorf("unable to read %s: %w", s.cfg.Title, err)
	}
	for i := 1; i < len(rows); i++ {
		if Cell(rows[i], 0) == id {
			return i, nil
		}
	}
	return -1, nil
}

func (s *Store[T]) sheetID(ctx context.Context, spreadsheetID string) (int64, error) {
	props, err := s.sheets.Sheets(ctx, spreadsheetID)
	if err != nil {
		return 0, fmt.Errorf("unable to read sheet metadata: %w", err)
	}
	for _, p := range props {
		if p.Title == s.cfg.Title {
			return p.SheetID, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found", s.cfg.Title)
}

// beginSave marks the store saving and clears the last failure
func (s *Store[T]) beginSave() func() {
	s.mu.Lock()
	s.saving = true
	s.errMsg = ""
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}
}

// fail records msg as the store's error and returns err carrying it
func (s *Store[T]) fail(msg string, err error) error {
	log.Printf("[SheetStore] %s: %s: %v", s.cfg.Title, msg, err)
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
	return apperr.Fail(msg, err)
}

// notFound wraps ErrNotFound so callers can still match it under a Failure
func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *Store[T]) reset() {
	s.mu.Lock()
	s.data = []T{}
	s.errMsg = ""
	s.loaded = false
	s.mu.Unlock()
}
