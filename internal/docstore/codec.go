package docstore

import (
	"bytes"
	"encoding/json"
	"log"
	"regexp"
	"strings"
	"unicode/utf16"
)

const (
	StartMarker = "---DATA-START---"
	EndMarker   = "---DATA-END---"
)

var payloadPattern = regexp.MustCompile(`---DATA-START---\n([\s\S]*?)\n---DATA-END---`)

// InitialBody is the text a new document is seeded with
func InitialBody(heading string) string {
	return heading + "\n\n" + StartMarker + "\n[]\n" + EndMarker + "\n"
}

// Payload extracts the text between the markers
func Payload(text string) (string, bool) {
	m := payloadPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Decode parses the embedded array. Missing markers, an empty payload and
// unparsable JSON all decode to an empty list.
func Decode[T any](text string) []T {
	payload, ok := Payload(text)
	if !ok {
		return []T{}
	}
	payload = strings.TrimSpace(payload)
	if payload == "" || payload == "[]" {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		log.Printf("[DocStore] unparsable payload, treating as empty: %v", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Encode renders items as a two-space indented JSON array
func Encode[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DataRange returns the Docs index range [start, end) of the payload.
// Docs indexes count UTF-16 code units and the body starts at index 1, so a
// text offset o maps to index o+1.
func DataRange(text string) (start, end int64, ok bool) {
	open := StartMarker + "\n"
	startIdx := strings.Index(text, open)
	if startIdx < 0 {
		return 0, 0, false
	}
	rel := strings.Index(text[startIdx:], "\n"+EndMarker)
	if rel < 0 {
		return 0, 0, false
	}
	endIdx := startIdx + rel

	start = utf16Len(text[:startIdx]) + utf16Len(open) + 1
	end = utf16Len(text[:endIdx]) + 1
	if end < start {
		// the markers share one newline; there is no payload line to replace
		return 0, 0, false
	}
	return start, end, true
}

func utf16Len(s string) int64 {
	return int64(len(utf16.Encode([]rune(s))))
}
