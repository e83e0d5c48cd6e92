package provision

import (
	"sync"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/kv"
)

// Workbooks hands out one Workbook per user, each bound to the user's cache
type Workbooks struct {
	sheets  backing.Spreadsheets
	files   backing.Files
	backend kv.Backend

	mu    sync.Mutex
	books map[string]*Workbook
}

// NewWorkbooks creates the registry
func NewWorkbooks(sheets backing.Spreadsheets, files backing.Files, backend kv.Backend) *Workbooks {
	return &Workbooks{
		sheets:  sheets,
		files:   files,
		backend: backend,
		books:   map[string]*Workbook{},
	}
}

// For returns the user's workbook
func (w *Workbooks) For(userID string) *Workbook {
	w.mu.Lock()
	defer w.mu.Unlock()
	wb, ok := w.books[userID]
	if !ok {
		wb = NewWorkbook(w.sheets, w.files, w.backend.Scope(userID))
		w.books[userID] = wb
	}
	return wb
}

// Resolver returns a resolver over the user's cache, for folders and
// documents outside the workbook
func (w *Workbooks) Resolver(userID string) *Resolver {
	return NewResolver(w.files, w.backend.Scope(userID))
}

// Cache returns the user's key-value scope
func (w *Workbooks) Cache(userID string) kv.Store {
	return w.backend.Scope(userID)
}
