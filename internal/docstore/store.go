// Package docstore keeps a collection as a JSON array embedded between two
// marker lines of a Google Doc.
package docstore

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

const (
	MsgDocumentUnavailable = "문서를 불러올 수 없습니다"
	MsgSaveFailed          = "데이터를 저장하는 중 오류가 발생했습니다"
)

var (
	ErrNotFound  = errors.New("docstore: item not found")
	ErrSignedOut = fmt.Errorf("docstore: %w", apperr.ErrSignedOut)

	// ErrMarkersMissing means the document lost its data markers; saves leave it untouched
	ErrMarkersMissing = errors.New("docstore: data markers not found")
)

// Snapshot is a consistent copy of a store's state
type Snapshot[T any] struct {
	Items      []T    `json:"items"`
	IsLoading  bool   `json:"isLoading"`
	IsSaving   bool   `json:"isSaving"`
	Error      string `json:"error,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
}

// Location names the folder and document a store lives in
type Location struct {
	FolderName string
	FolderKey  string
	DocName    string
	DocKey     string
	Heading    string
}

// Store is a document-backed collection
type Store[T any] struct {
	docs     backing.Documents
	files    backing.Files
	resolver *provision.Resolver
	loc      Location
	id       func(T) string

	mu         sync.RWMutex
	items      []T
	loading    bool
	saving     bool
	errMsg     string
	loaded     bool
	documentID string
}

// New creates a store; resolver carries the user's identifier cache
func New[T any](docs backing.Documents, files backing.Files, resolver *provision.Resolver, loc Location, id func(T) string) *Store[T] {
	return &Store[T]{
		docs:     docs,
		files:    files,
		resolver: resolver,
		loc:      loc,
		id:       id,
		items:    []T{},
	}
}

// Document resolves the folder, then the document inside it, creating and
// seeding them when needed
func (s *Store[T]) Document(ctx context.Context) (string, error) {
	folderID, err := s.resolver.Folder(ctx, s.loc.FolderName, s.loc.FolderKey)
	if err != nil {
		return "", err
	}
	res, err := s.resolver.Resolve(ctx, provision.Target{
		Kind:     "document",
		CacheKey: s.loc.DocKey,
		Name:     s.loc.DocName,
		MimeType: backing.MimeDocument,
		ParentID: folderID,
		Create: func(ctx context.Context) (string, error) {
			id, err := s.files.CreateFile(ctx, s.loc.DocName, backing.MimeDocument, folderID)
			if err != nil {
				return "", err
			}
			if err := s.docs.InsertText(ctx, id, 1, InitialBody(s.loc.Heading)); err != nil {
				log.Printf("[DocStore] seeding %s failed: %v", id, err)
			}
			return id, nil
		},
	})
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.documentID = res.ID
	s.mu.Unlock()
	return res.ID, nil
}

// Load reads and decodes the document. Signed-out or unauthorized sessions
// get an empty collection without an error.
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

	docID, err := s.Document(ctx)
	if err == nil {
		var text string
		text, err = s.docs.Text(ctx, docID)
		if err == nil {
			items := Decode[T](text)
			s.mu.Lock()
			s.items = items
			s.errMsg = ""
			s.loaded = true
			s.mu.Unlock()
			return nil
		}
	}
	if backing.IsUnauthorized(err) {
		s.reset()
		return nil
	}
	return s.fail(MsgDocumentUnavailable, err)
}

// Refresh reloads from the document
func (s *Store[T]) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// EnsureLoaded loads once
func (s *Store[T]) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded && backing.AccessToken(ctx) != "" {
		return nil
	}
	return s.Load(ctx)
}

// Save replaces the embedded array with items. The marker offsets come from
// a fresh read; an edit landing between that read and the write shifts them.
func (s *Store[T]) Save(ctx context.Context, items []T) error {
	if backing.AccessToken(ctx) == "" {
		return ErrSignedOut
	}
	s.mu.Lock()
	s.saving = true
	s.errMsg = ""
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	if err := s.write(ctx, items); err != nil {
		return s.fail(MsgSaveFailed, err)
	}
	s.mu.Lock()
	s.items = append([]T{}, items...)
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

func (s *Store[T]) write(ctx context.Context, items []T) error {
	docID, err := s.Document(ctx)
	if err != nil {
		return err
	}
	payload, err := Encode(items)
	if err != nil {
		return fmt.Errorf("unable to encode items: %w", err)
	}
	text, err := s.docs.Text(ctx, docID)
	if err != nil {
		return err
	}
	start, end, ok := DataRange(text)
	if !ok {
		return fmt.Errorf("%w in document %s", ErrMarkersMissing, docID)
	}
	if start == end {
		return s.docs.InsertText(ctx, docID, start, payload)
	}
	return s.docs.ReplaceRange(ctx, docID, start, end, payload)
}

// Add appends item and saves
func (s *Store[T]) Add(ctx context.Context, item T) error {
	return s.Save(ctx, append(s.Items(), item))
}

// Update applies fn to the item with the given id and saves
func (s *Store[T]) Update(ctx context.Context, id string, fn func(*T)) error {
	items := s.Items()
	found := false
	for i := range items {
		if s.id(items[i]) == id {
			fn(&items[i])
			found = true
		}
	}
	if !found {
		return s.fail(MsgSaveFailed, fmt.Errorf("%w: %s", ErrNotFound, id))
	}
	return s.Save(ctx, items)
}

// Delete removes the item with the given id and saves
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	items := s.Items()
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if s.id(it) != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return s.fail(MsgSaveFailed, fmt.Errorf("%w: %s", ErrNotFound, id))
	}
	return s.Save(ctx, kept)
}

// Items returns a copy of the collection
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T{}, s.items...)
}

func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[T]{
		Items:      append([]T{}, s.items...),
		IsLoading:  s.loading,
		IsSaving:   s.saving,
		Error:      s.errMsg,
		DocumentID: s.documentID,
	}
}

func (s *Store[T]) fail(msg string, err error) error {
	log.Printf("[DocStore] %s: %s: %v", s.loc.DocName, msg, err)
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
	return apperr.Fail(msg, err)
}

func (s *Store[T]) reset() {
	s.mu.Lock()
	s.items = []T{}
	s.errMsg = ""
	s.loaded = false
	s.mu.Unlock()
}
