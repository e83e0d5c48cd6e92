package domain

import (
	"math"

	"lifeops-backend/internal/reference"
)

// Check is one row of the 루틴 기록 tab: a routine's state on one day
type Check struct {
	ID          string `json:"id"` // <routineId>_<date>
	RoutineID   string `json:"routineId"`
	Label       string `json:"label"`
	Detail      string `json:"detail"`
	Date        string `json:"date"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt"`
}

// CheckID is the log row id for a routine on a date
func CheckID(routineID, date string) string {
	return routineID + "_" + date
}

// Item is a routine with its state for the day
type Item struct {
	reference.Routine
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// Stats is the day's progress
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

// Checklist joins the routines with the day's log rows
func Checklist(routines []reference.Routine, checks []Check, date string) []Item {
	byID := make(map[string]Check, len(checks))
	for _, c := range checks {
		if c.Date == date {
			byID[c.RoutineID] = c
		}
	}
	items := make([]Item, 0, len(routines))
	for _, r := range routines {
		c := byID[r.ID]
		items = append(items, Item{Routine: r, Completed: c.Completed, CompletedAt: c.CompletedAt})
	}
	return items
}

func Summarize(items []Item) Stats {
	st := Stats{Total: len(items)}
	for _, it := range items {
		if it.Completed {
			st.Completed++
		}
	}
	st.Percentage = Percent(st.Completed, st.Total)
	return st
}

// Percent rounds part/total to a whole percentage; 0 when total is 0
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
