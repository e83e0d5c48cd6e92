package ai

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseEvaluation reads the model's reply. Code fences and surrounding prose
// are ignored; every field is optional and scores are clamped to 0..100.
func ParseEvaluation(text string) (*Evaluation, error) {
	obj := extractObject(text)
	if obj == "" || !gjson.Valid(obj) {
		return nil, fmt.Errorf("evaluation is not a JSON object: %.80q", text)
	}
	doc := gjson.Parse(obj)

	e := &Evaluation{
		OverallScore: clamp(doc.Get("overallScore").Int()),
		Categories:   []CategoryScore{},
		Strengths:    strs(doc.Get("strengths")),
		Improvements: strs(doc.Get("improvements")),
		ActionItems:  strs(doc.Get("actionItems")),
	}
	doc.Get("categories").ForEach(func(_, c gjson.Result) bool {
		e.Categories = append(e.Categories, CategoryScore{
			Name:       c.Get("name").String(),
			Score:      clamp(c.Get("score").Int()),
			Analysis:   c.Get("analysis").String(),
			Suggestion: c.Get("suggestion").String(),
		})
		return true
	})
	e.Label = ScoreLabel(e.OverallScore)
	return e, nil
}

// ScoreLabel names a score band
func ScoreLabel(score int) string {
	switch {
	case score >= 90:
		return "우수"
	case score >= 80:
		return "양호"
	case score >= 60:
		return "보통"
	case score >= 40:
		return "개선 필요"
	default:
		return "위험"
	}
}

func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}

func strs(r gjson.Result) []string {
	out := []string{}
	for _, v := range r.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clamp(n int64) int {
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	}
	return int(n)
}
