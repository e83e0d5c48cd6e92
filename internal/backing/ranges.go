package backing

import "strings"

// SheetRange builds an A1 range on a named tab: SheetRange("Tasks", "A2") is
// 'Tasks'!A2. Quotes inside the title are doubled.
func SheetRange(title, cells string) string {
	quoted := "'" + strings.ReplaceAll(title, "'", "''") + "'"
	if cells == "" {
		return quoted
	}
	return quoted + "!" + cells
}

// SpreadsheetURL returns the browser URL of a spreadsheet
func SpreadsheetURL(spreadsheetID string) string {
	return "https://docs.google.com/spreadsheets/d/" + spreadsheetID
}
