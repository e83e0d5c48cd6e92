package domain

import (
	"sort"

	"lifeops-backend/pkg/fuzzy"
)

// Record is one row of a workbook tab keyed by header name
type Record map[string]string

func (r Record) ID() string { return r["id"] }

// Project keeps exactly the given headers, filling missing ones with ""
func (r Record) Project(headers []string) Record {
	out := make(Record, len(headers))
	for _, h := range headers {
		out[h] = r[h]
	}
	return out
}

// Merge overlays patch onto r for keys present in headers, never touching id
func (r Record) Merge(patch Record, headers []string) Record {
	out := r.Project(headers)
	for _, h := range headers {
		if h == "id" {
			continue
		}
		if v, ok := patch[h]; ok {
			out[h] = v
		}
	}
	return out
}

// Search keeps records with any non-id cell matching query, closest first
func Search(records []Record, query string) []Record {
	return fuzzy.Filter(records, query, func(r Record) []string {
		keys := make([]string, 0, len(r))
		for k := range r {
			if k != "id" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		fields := make([]string, len(keys))
		for i, k := range keys {
			fields[i] = r[k]
		}
		return fields
	})
}
