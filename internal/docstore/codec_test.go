package docstore

import (
	"strings"
	"testing"
	"unicode/utf16"
)

type entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	items := []entry{{ID: "1", Title: "후지산 등반 <&>"}, {ID: "2", Title: "🎯 goal"}}
	payload, err := Encode(items)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(payload, "<&>") {
		t.Fatalf("payload escaped HTML: %s", payload)
	}
	if !strings.HasPrefix(payload, "[\n  {") {
		t.Fatalf("payload not two-space indented: %q", payload)
	}
	text := "heading\n\n" + StartMarker + "\n" + payload + "\n" + EndMarker + "\n"
	got := Decode[entry](text)
	if len(got) != 2 || got[0] != items[0] || got[1] != items[1] {
		t.Fatalf("Decode=%v, want %v", got, items)
	}
}

func TestEncodeEmpty(t *testing.T) {
	payload, err := Encode[entry](nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if payload != "[]" {
		t.Fatalf("payload=%q, want []", payload)
	}
}

func TestDecodeFallsBackToEmpty(t *testing.T) {
	cases := map[string]string{
		"no markers":   "just some prose\n",
		"empty":        StartMarker + "\n\n" + EndMarker,
		"empty array":  InitialBody("h"),
		"broken json":  StartMarker + "\n[{\"id\": \n" + EndMarker,
		"only start":   StartMarker + "\n[]\n",
		"wrong object": StartMarker + "\n{\"id\":\"1\"}\n" + EndMarker,
	}
	for name, text := range cases {
		if got := Decode[entry](text); got == nil || len(got) != 0 {
			t.Errorf("%s: Decode=%v, want empty non-nil", name, got)
		}
	}
}

func TestDataRangeCountsUTF16Units(t *testing.T) {
	heading := "🎯 버킷리스트"
	text := InitialBody(heading)
	start, end, ok := DataRange(text)
	if !ok {
		t.Fatalf("markers not found")
	}
	// 🎯 is a surrogate pair: two code units
	prefix := len(utf16.Encode([]rune(heading+"\n\n"+StartMarker+"\n")))
	if start != int64(prefix)+1 {
		t.Fatalf("start=%d, want %d", start, prefix+1)
	}
	if end != start+2 {
		t.Fatalf("end=%d, want %d", end, start+2)
	}
}

func TestDataRangeMissingMarkers(t *testing.T) {
	for _, text := range []string{"", "nothing here", StartMarker + "\n[]", StartMarker + "\n" + EndMarker} {
		if _, _, ok := DataRange(text); ok {
			t.Errorf("DataRange(%q) ok, want not found", text)
		}
	}
}
