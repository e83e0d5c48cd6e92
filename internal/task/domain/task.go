package domain

import "sort"

// Task is a to-do item on the 오늘 할일 tab
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Due       string `json:"due,omitempty"` // YYYY-MM-DD
	CreatedAt string `json:"createdAt"`
}

// DueBy reports whether the task belongs on the list for today: no due
// date, or due today or earlier
func (t Task) DueBy(today string) bool {
	return t.Due == "" || t.Due <= today
}

// TodayView filters tasks due by today and orders them incomplete first,
// then newest first
func TodayView(tasks []Task, today string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueBy(today) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Counts summarises a task list
type Counts struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
}

func Count(tasks []Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Incomplete = c.Total - c.Completed
	return c
}
