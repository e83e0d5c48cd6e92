package google

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"lifeops-backend/internal/backing"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
)

func TestTranslateMapsStatusCodes(t *testing.T) {
	cases := []struct {
		code         int
		unauthorized bool
		notFound     bool
	}{
		{http.StatusUnauthorized, true, false},
		{http.StatusNotFound, false, true},
		{http.StatusInternalServerError, false, false},
		{http.StatusForbidden, false, false},
	}
	for _, tc := range cases {
		err := translate(&googleapi.Error{Code: tc.code, Message: "x"}, "read values")
		if got := backing.IsUnauthorized(err); got != tc.unauthorized {
			t.Fatalf("code %d: IsUnauthorized=%v, want %v", tc.code, got, tc.unauthorized)
		}
		if got := backing.IsNotFound(err); got != tc.notFound {
			t.Fatalf("code %d: IsNotFound=%v, want %v", tc.code, got, tc.notFound)
		}
	}
	if translate(nil, "x") != nil {
		t.Fatalf("translate(nil) != nil")
	}
}

func TestCallsWithoutTokenAreUnauthorized(t *testing.T) {
	s := NewService("id", "secret")
	if _, err := s.Values(context.Background(), "sheet", "'A'"); !errors.Is(err, backing.ErrUnauthorized) {
		t.Fatalf("err=%v, want ErrUnauthorized", err)
	}
	if _, err := s.Stat(context.Background(), "file"); !errors.Is(err, backing.ErrUnauthorized) {
		t.Fatalf("err=%v, want ErrUnauthorized", err)
	}
}

func TestSearchQuery(t *testing.T) {
	got := SearchQuery("LifeOps Data", backing.MimeSpreadsheet, "")
	want := "name='LifeOps Data' and mimeType='application/vnd.google-apps.spreadsheet' and trashed=false"
	if got != want {
		t.Fatalf("SearchQuery=%q, want %q", got, want)
	}
	got = SearchQuery("Jin's API Keys", backing.MimeSpreadsheet, "folder-1")
	want = `name='Jin\'s API Keys' and mimeType='application/vnd.google-apps.spreadsheet' and trashed=false and 'folder-1' in parents`
	if got != want {
		t.Fatalf("SearchQuery=%q, want %q", got, want)
	}
}

func TestBodyTextConcatenatesRuns(t *testing.T) {
	doc := &docs.Document{Body: &docs.Body{Content: []*docs.StructuralElement{
		{SectionBreak: &docs.SectionBreak{}},
		{Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{
			{TextRun: &docs.TextRun{Content: "🎯 버킷"}},
			{TextRun: &docs.TextRun{Content: "리스트\n"}},
		}}},
		{Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{
			{TextRun: &docs.TextRun{Content: "---DATA-START---\n"}},
		}}},
		{Table: &docs.Table{}},
	}}}
	want := "🎯 버킷리스트\n---DATA-START---\n"
	if got := BodyText(doc); got != want {
		t.Fatalf("BodyText=%q, want %q", got, want)
	}
	if BodyText(nil) != "" {
		t.Fatalf("BodyText(nil) not empty")
	}
}

var (
	_ backing.Spreadsheets = (*Service)(nil)
	_ backing.Files        = (*Service)(nil)
	_ backing.Documents    = (*Service)(nil)
)
