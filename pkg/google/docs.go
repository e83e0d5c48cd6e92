package google

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

func (s *Service) docsService(ctx context.Context) (*docs.Service, error) {
	client, err := s.httpClient(ctx)
	if err != nil {
		return nil, err
	}
	srv, err := docs.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Docs service: %v", err)
	}
	return srv, nil
}

func (s *Service) Text(ctx context.Context, documentID string) (string, error) {
	srv, err := s.docsService(ctx)
	if err != nil {
		return "", err
	}
	doc, err := srv.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return "", translate(err, "read document")
	}
	return BodyText(doc), nil
}

// BodyText concatenates the text runs of every body paragraph
func BodyText(doc *docs.Document) string {
	if doc == nil || doc.Body == nil {
		return ""
	}
	var b strings.Builder
	for _, el := range doc.Body.Content {
		if el.Paragraph == nil {
			continue
		}
		for _, pe := range el.Paragraph.Elements {
			if pe.TextRun != nil {
				b.WriteString(pe.TextRun.Content)
			}
		}
	}
	return b.String()
}

func (s *Service) InsertText(ctx context.Context, documentID string, index int64, text string) error {
	return s.docsBatch(ctx, documentID, "insert text", &docs.Request{
		InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: index}, Text: text},
	})
}

// ReplaceRange sends delete-then-insert in one batch so the insert index is
// not shifted by the edit itself
func (s *Service) ReplaceRange(ctx context.Context, documentID string, start, end int64, text string) error {
	return s.docsBatch(ctx, documentID, "replace text",
		&docs.Request{
			DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: start, EndIndex: end}},
		},
		&docs.Request{
			InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: start}, Text: text},
		},
	)
}

func (s *Service) docsBatch(ctx context.Context, documentID, action string, requests ...*docs.Request) error {
	srv, err := s.docsService(ctx)
	if err != nil {
		return err
	}
	_, err = srv.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{Requests: requests}).Context(ctx).Do()
	return translate(err, action)
}
