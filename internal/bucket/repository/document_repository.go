package repository

import (
	"context"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/bucket/domain"
	"lifeops-backend/internal/docstore"
	"lifeops-backend/internal/provision"
)

// Location of the bucket list document in Drive
var Location = docstore.Location{
	FolderName: "LifeOps 버킷리스트",
	FolderKey:  "lifeops_bucket_folder_id",
	DocName:    "버킷리스트",
	DocKey:     "lifeops_bucket_doc_id",
	Heading:    "🎯 버킷리스트",
}

type documentRepository struct {
	pool *docstore.Pool[domain.BucketItem]
}

// NewDocumentRepository stores each user's list in a Google Doc
func NewDocumentRepository(docs backing.Documents, files backing.Files, workbooks *provision.Workbooks) BucketRepository {
	return &documentRepository{
		pool: docstore.NewPool(func(userID string) *docstore.Store[domain.BucketItem] {
			return docstore.New(docs, files, workbooks.Resolver(userID), Location,
				func(it domain.BucketItem) string { return it.ID })
		}),
	}
}

func (r *documentRepository) List(ctx context.Context, userID string, refresh bool) ([]domain.BucketItem, error) {
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

func (r *documentRepository) Create(ctx context.Context, userID string, item domain.BucketItem) error {
	s := r.pool.For(userID)
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	return s.Add(ctx, item)
}

func (r *documentRepository) UpdateStatus(ctx context.Context, userID, id string, status domain.Status) error {
	s := r.pool.For(userID)
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	return s.Update(ctx, id, func(it *domain.BucketItem) { it.Status = status })
}

func (r *documentRepository) Delete(ctx context.Context, userID, id string) error {
	s := r.pool.For(userID)
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}
