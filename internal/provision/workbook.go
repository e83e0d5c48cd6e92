package provision

import (
	"context"
	"log"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/kv"
)

const (
	WorkbookName     = "LifeOps Data"
	WorkbookCacheKey = "lifeops_data_spreadsheet_id"
)

// Workbook resolves the shared "LifeOps Data" spreadsheet
type Workbook struct {
	resolver *Resolver
	sheets   backing.Spreadsheets
}

// NewWorkbook creates a workbook locator for one user's cache
func NewWorkbook(sheets backing.Spreadsheets, files backing.Files, cache kv.Store) *Workbook {
	return &Workbook{
		resolver: NewResolver(files, cache),
		sheets:   sheets,
	}
}

// Resolve finds or creates the spreadsheet
func (w *Workbook) Resolve(ctx context.Context) (Resolution, error) {
	return w.resolver.Resolve(ctx, Target{
		Kind:     "spreadsheet",
		CacheKey: WorkbookCacheKey,
		Name:     WorkbookName,
		MimeType: backing.MimeSpreadsheet,
		Create:   w.create,
	})
}

// Spreadsheet returns the spreadsheet id
func (w *Workbook) Spreadsheet(ctx context.Context) (string, error) {
	res, err := w.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

// create makes the spreadsheet with every tab and header row. The header
// write is a second request; if it fails the id is still returned and
// EnsureSheet repairs each header on first use.
func (w *Workbook) create(ctx context.Context) (string, error) {
	titles := make([]string, 0, len(Tabs))
	headers := make([]backing.ValueRange, 0, len(Tabs))
	for _, t := range Tabs {
		titles = append(titles, t.Title)
		headers = append(headers, backing.ValueRange{
			Range: backing.SheetRange(t.Title, "A1"),
			Rows:  [][]string{t.Headers},
		})
	}

	id, err := w.sheets.Create(ctx, WorkbookName, titles)
	if err != nil {
		return "", err
	}
	if err := w.sheets.BatchUpdateValues(ctx, id, headers); err != nil {
		log.Printf("[Provision] header rows for new workbook %s not written: %v", id, err)
	}
	return id, nil
}
