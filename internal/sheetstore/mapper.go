package sheetstore

// RowMapper converts between a domain object and an ordered row of cells
type RowMapper[T any] interface {
	ID(item T) string
	ToRow(item T) []string
	// FromRow builds an object from a data row; headers is the tab's
	// configured header list and row may be shorter than it
	FromRow(row []string, headers []string) T
}

// Cell returns row[i] or "" when the backend trimmed the trailing cells
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Fields zips a row with its headers
func Fields(row []string, headers []string) map[string]string {
	m := make(map[string]string, len(headers))
	for i, h := range headers {
		m[h] = Cell(row, i)
	}
	return m
}

// Bool renders a flag the way the sheet stores it
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ParseBool reads a stored flag; anything other than "true" is false
func ParseBool(s string) bool {
	return s == "true"
}
