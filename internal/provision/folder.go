package provision

import (
	"context"

	"lifeops-backend/internal/backing"
)

// Folder resolves a top-level Drive folder by name
func (r *Resolver) Folder(ctx context.Context, name, cacheKey string) (string, error) {
	res, err := r.Resolve(ctx, Target{
		Kind:     "folder",
		CacheKey: cacheKey,
		Name:     name,
		MimeType: backing.MimeFolder,
		Create: func(ctx context.Context) (string, error) {
			return r.files.CreateFile(ctx, name, backing.MimeFolder, "")
		},
	})
	if err != nil {
		return "", err
	}
	return res.ID, nil
}
