package repository

import (
	"context"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/docstore"
	"lifeops-backend/internal/journal/domain"
	"lifeops-backend/internal/provision"
)

// Location of the study journal document in Drive
var Location = docstore.Location{
	FolderName: "LifeOps 공부장",
	FolderKey:  "lifeops_study_folder_id",
	DocName:    "공부장",
	DocKey:     "lifeops_study_doc_id",
	Heading:    "📚 공부장",
}

// JournalRepository defines the interface for study journal storage
type JournalRepository interface {
	List(ctx context.Context, userID string, refresh bool) ([]domain.Entry, error)
	// Create stores the entry ahead of the existing ones
	Create(ctx context.Context, userID string, entry domain.Entry) error
	Delete(ctx context.Context, userID, id string) error
}

type documentRepository struct {
	pool *docstore.Pool[domain.Entry]
}

func NewDocumentRepository(docs backing.Documents, files backing.Files, workbooks *provision.Workbooks) JournalRepository {
	return &documentRepository{
		pool: docstore.NewPool(func(userID string) *docstore.Store[domain.Entry] {
			return docstore.New(docs, files, workbooks.Resolver(userID), Location,
				func(e domain.Entry) string { return e.ID })
		}),
	}
}

func (r *documentRepository) List(ctx context.Context, userID string, refresh bool) ([]domain.Entry, error) {
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
	return s.Items(), nil
}

func (r *documentRepository) Create(ctx context.Context, userID string, entry domain.Entry) error {
	s := r.pool.For(userID)
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	return s.Save(ctx, append([]domain.Entry{entry}, s.Items()...))
}

func (r *documentRepository) Delete(ctx context.Context, userID, id string) error {
	s := r.pool.For(userID)
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}
