package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// LevenshteinDistance calculates the edit distance between two strings in
// runes, so one Hangul syllable counts as one edit
func LevenshteinDistance(s1, s2 string) int {
	// Normalize strings: lowercase and strip combining marks for better matching
	r1 := []rune(normalizeString(s1))
	r2 := []rune(normalizeString(s2))
	m, n := len(r1), len(r2)

	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Two rows are enough
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}
	for i := 1; i <= m; i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			cur[j] = min3(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}
	return prev[n]
}

// Threshold is the typo tolerance for a query of this length
func Threshold(query string) int {
	switch n := len([]rune(normalizeString(query))); {
	case n <= 3:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// Match checks if query fuzzy-matches text within threshold edits
func Match(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)
	if query == "" {
		return true
	}

	// If query is contained in text, it's a match
	if strings.Contains(text, query) {
		return true
	}

	// Check if any word in text fuzzy-matches the query
	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
	}

	// Check overall distance for short texts
	if len([]rune(text)) < 50 {
		maxDistance := threshold + len([]rune(query))/5
		if LevenshteinDistance(query, text) <= maxDistance {
			return true
		}
	}
	return false
}

// MatchAny reports whether any field matches query
func MatchAny(query string, fields ...string) bool {
	threshold := Threshold(query)
	for _, f := range fields {
		if f != "" && Match(query, f, threshold) {
			return true
		}
	}
	return false
}

// Score rates how relevant the fields are to query. Earlier fields weigh
// more; exact containment beats a close spelling.
func Score(query string, fields ...string) float64 {
	query = normalizeString(query)
	if query == "" {
		return 0
	}
	score := 0.0
	for i, f := range fields {
		weight := 1.0 / float64(i+1)
		norm := normalizeString(f)
		if strings.Contains(norm, query) {
			score += 100 * weight
			// Bonus for exact word match
			if containsWord(norm, query) {
				score += 50 * weight
			}
			continue
		}
		for _, word := range strings.Fields(norm) {
			if dist := LevenshteinDistance(query, word); dist <= 2 {
				score += (50 - float64(dist)*15) * weight
			}
			if strings.HasPrefix(word, query) {
				score += 40 * weight
			}
		}
	}
	return score
}

// Filter keeps the items whose fields match query, most relevant first. An
// empty query keeps everything in order.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	type scored struct {
		item  T
		score float64
	}
	hits := []scored{}
	for _, it := range items {
		f := fields(it)
		if MatchAny(query, f...) {
			hits = append(hits, scored{it, Score(query, f...)})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}

// Helper functions

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// normalizeString lowercases, drops nonspacing marks and collapses whitespace
func normalizeString(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// containsWord checks if text contains query as a whole word
func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
