package google

import (
	"context"
	"fmt"
	"strings"

	"lifeops-backend/internal/backing"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func (s *Service) driveService(ctx context.Context) (*drive.Service, error) {
	client, err := s.httpClient(ctx)
	if err != nil {
		return nil, err
	}
	srv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive service: %v", err)
	}
	return srv, nil
}

func (s *Service) Stat(ctx context.Context, fileID string) (*backing.File, error) {
	srv, err := s.driveService(ctx)
	if err != nil {
		return nil, err
	}
	f, err := srv.Files.Get(fileID).Fields("id, name, trashed").Context(ctx).Do()
	if err != nil {
		return nil, translate(err, "read file")
	}
	return &backing.File{ID: f.Id, Name: f.Name, Trashed: f.Trashed}, nil
}

// FindByName returns the first listed match; Drive's order decides ties
func (s *Service) FindByName(ctx context.Context, name, mimeType, parentID string) (*backing.File, error) {
	srv, err := s.driveService(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := srv.Files.List().Q(SearchQuery(name, mimeType, parentID)).
		Fields("files(id, name)").Spaces("drive").PageSize(10).Context(ctx).Do()
	if err != nil {
		return nil, translate(err, "search files")
	}
	if len(resp.Files) == 0 {
		return nil, nil
	}
	f := resp.Files[0]
	return &backing.File{ID: f.Id, Name: f.Name}, nil
}

func (s *Service) CreateFile(ctx context.Context, name, mimeType, parentID string) (string, error) {
	srv, err := s.driveService(ctx)
	if err != nil {
		return "", err
	}
	file := &drive.File{Name: name, MimeType: mimeType}
	if parentID != "" {
		file.Parents = []string{parentID}
	}
	f, err := srv.Files.Create(file).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", translate(err, "create file")
	}
	return f.Id, nil
}

func (s *Service) AddParent(ctx context.Context, fileID, folderID string) error {
	srv, err := s.driveService(ctx)
	if err != nil {
		return err
	}
	_, err = srv.Files.Update(fileID, &drive.File{}).AddParents(folderID).Fields("id, parents").Context(ctx).Do()
	return translate(err, "move file")
}

// SearchQuery builds the Drive query for an exact-name lookup
func SearchQuery(name, mimeType, parentID string) string {
	q := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", escapeQuery(name), mimeType)
	if parentID != "" {
		q += fmt.Sprintf(" and '%s' in parents", escapeQuery(parentID))
	}
	return q
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
