package provision

import (
	"context"
	"fmt"
	"log"

	"lifeops-backend/internal/backing"
)

// EnsureSheet creates the tab when missing and rewrites the header row when it
// differs from cfg.Headers in any cell. Extra trailing header cells are blanked
// so the row ends up exactly equal to the expected list.
func EnsureSheet(ctx context.Context, sheets backing.Spreadsheets, spreadsheetID string, cfg SheetConfig) error {
	props, err := sheets.Sheets(ctx, spreadsheetID)
	if err != nil {
		return fmt.Errorf("unable to read sheet metadata: %w", err)
	}
	exists := false
	for _, p := range props {
		if p.Title == cfg.Title {
			exists = true
			break
		}
	}
	if !exists {
		log.Printf("[Provision] adding missing tab %q to %s", cfg.Title, spreadsheetID)
		if err := sheets.AddSheet(ctx, spreadsheetID, cfg.Title); err != nil {
			return fmt.Errorf("unable to add sheet %q: %w", cfg.Title, err)
		}
	}

	rows, err := sheets.Values(ctx, spreadsheetID, backing.SheetRange(cfg.Title, "1:1"))
	if err != nil {
		return fmt.Errorf("unable to read header row: %w", err)
	}
	var current []string
	if len(rows) > 0 {
		current = rows[0]
	}
	if HeadersMatch(current, cfg.Headers) {
		return nil
	}

	log.Printf("[Provision] rewriting header row of %q", cfg.Title)
	header := make([]string, len(cfg.Headers), max(len(cfg.Headers), len(current)))
	copy(header, cfg.Headers)
	for len(header) < len(current) {
		header = append(header, "")
	}
	if err := sheets.UpdateValues(ctx, spreadsheetID, backing.SheetRange(cfg.Title, "A1"), [][]string{header}); err != nil {
		return fmt.Errorf("unable to write header row: %w", err)
	}
	return nil
}

// HeadersMatch compares a header row cell by cell
func HeadersMatch(current, expected []string) bool {
	if len(current) != len(expected) {
		return false
	}
	for i := range expected {
		if current[i] != expected[i] {
			return false
		}
	}
	return true
}
