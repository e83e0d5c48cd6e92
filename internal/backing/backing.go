package backing

import (
	"context"
	"errors"
)

// Mime types used for Drive discovery
const (
	MimeSpreadsheet = "application/vnd.google-apps.spreadsheet"
	MimeFolder      = "application/vnd.google-apps.folder"
	MimeDocument    = "application/vnd.google-apps.document"
)

var (
	// ErrUnauthorized means the access token was rejected (HTTP 401)
	ErrUnauthorized = errors.New("backing: unauthorized")
	// ErrNotFound means the remote resource does not exist (HTTP 404)
	ErrNotFound = errors.New("backing: not found")
)

// SheetProps describes one tab of a spreadsheet
type SheetProps struct {
	SheetID int64
	Title   string
}

// ValueRange is a range and the rows to write into it
type ValueRange struct {
	Range string
	Rows  [][]string
}

// File is the subset of Drive file metadata the provisioner needs
type File struct {
	ID      string
	Name    string
	Trashed bool
}

// Spreadsheets is the spreadsheet REST surface
type Spreadsheets interface {
	// Create creates a spreadsheet with the given tabs and returns its id
	Create(ctx context.Context, title string, sheetTitles []string) (string, error)
	Sheets(ctx context.Context, spreadsheetID string) ([]SheetProps, error)
	AddSheet(ctx context.Context, spreadsheetID, title string) error
	// Values reads a range; trailing empty cells are omitted by the backend
	Values(ctx context.Context, spreadsheetID, rng string) ([][]string, error)
	UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error
	BatchUpdateValues(ctx context.Context, spreadsheetID string, ranges []ValueRange) error
	AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error
	// DeleteRows removes grid rows [start, end), zero-based
	DeleteRows(ctx context.Context, spreadsheetID string, sheetID, start, end int64) error
}

// Files is the Drive file-listing surface
type Files interface {
	Stat(ctx context.Context, fileID string) (*File, error)
	// FindByName returns the first non-trashed match, or nil when nothing matches
	FindByName(ctx context.Context, name, mimeType, parentID string) (*File, error)
	CreateFile(ctx context.Context, name, mimeType, parentID string) (string, error)
	AddParent(ctx context.Context, fileID, folderID string) error
}

// Documents is the Docs surface. Indexes are Docs indexes: 1-based UTF-16
// offsets, with index 0 taken by the document start.
type Documents interface {
	// Text concatenates every paragraph text run of the body
	Text(ctx context.Context, documentID string) (string, error)
	InsertText(ctx context.Context, documentID string, index int64, text string) error
	// ReplaceRange deletes [start, end) and inserts text at start in one batch
	ReplaceRange(ctx context.Context, documentID string, start, end int64, text string) error
}

type tokenKey struct{}

// WithAccessToken attaches a Google access token to ctx
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// AccessToken returns the token attached to ctx, or "" for a signed-out request
func AccessToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// IsUnauthorized reports whether err is an authorization lapse
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound reports whether err means the remote resource is gone
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
