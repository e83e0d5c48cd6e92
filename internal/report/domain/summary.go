// Package domain shapes the live collections and the static plan into the
// single summary shown on the dashboard and sent for evaluation.
package domain

import (
	companydomain "lifeops-backend/internal/company/domain"
	"lifeops-backend/internal/reference"
	routinedomain "lifeops-backend/internal/routine/domain"
	taskdomain "lifeops-backend/internal/task/domain"
)

type JobSearchSummary struct {
	TotalApplied int `json:"totalApplied"`
	InProgress   int `json:"inProgress"`
	Offers       int `json:"offers"`
	Rejected     int `json:"rejected"`
	Waiting      int `json:"waiting"`
}

type SpecSummary struct {
	Passed     int                  `json:"passed"`
	Registered int                  `json:"registered"`
	Studying   int                  `json:"studying"`
	NotStarted int                  `json:"notStarted"`
	Items      []reference.SpecItem `json:"items"`
}

type RoutineSummary struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Percentage     int `json:"percentage"`
	TaskTotal      int `json:"taskTotal"`
	TaskCompleted  int `json:"taskCompleted"`
	TaskIncomplete int `json:"taskIncomplete"`
}

// DashboardSummary is rebuilt on every request and never stored
type DashboardSummary struct {
	JobSearch   JobSearchSummary         `json:"jobSearch"`
	Spec        SpecSummary              `json:"spec"`
	Routine     RoutineSummary           `json:"routine"`
	Finance     reference.Finance        `json:"finance"`
	Roadmap     []reference.RoadmapMonth `json:"roadmap"`
	Goals       []reference.Goal         `json:"goals"`
	GeneratedAt string                   `json:"generatedAt"`
}

// Inputs are the live values the summary counts
type Inputs struct {
	AppliedCompanies []companydomain.AppliedCompany
	RoutineStats     routinedomain.Stats
	Tasks            []taskdomain.Task
}

// BuildDashboardSummary counts by status; everything else is copied from the
// reference plan
func BuildDashboardSummary(in Inputs, generatedAt string) DashboardSummary {
	jobs := companydomain.Summarize(in.AppliedCompanies)
	tasks := taskdomain.Count(in.Tasks)

	return DashboardSummary{
		JobSearch: JobSearchSummary{
			TotalApplied: jobs.Total,
			InProgress:   jobs.InProgress,
			Offers:       jobs.Offers,
			Rejected:     jobs.Rejected,
			Waiting:      jobs.Waiting,
		},
		Spec: summarizeSpec(reference.SpecItems),
		Routine: RoutineSummary{
			Total:          in.RoutineStats.Total,
			Completed:      in.RoutineStats.Completed,
			Percentage:     in.RoutineStats.Percentage,
			TaskTotal:      tasks.Total,
			TaskCompleted:  tasks.Completed,
			TaskIncomplete: tasks.Incomplete,
		},
		Finance:     reference.FinanceSnapshot,
		Roadmap:     reference.Roadmap,
		Goals:       reference.Goals,
		GeneratedAt: generatedAt,
	}
}

func summarizeSpec(items []reference.SpecItem) SpecSummary {
	s := SpecSummary{Items: items}
	for _, it := range items {
		switch it.Status {
		case reference.SpecPassed:
			s.Passed++
		case reference.SpecRegistered:
			s.Registered++
		case reference.SpecStudying:
			s.Studying++
		case reference.SpecNotStarted:
			s.NotStarted++
		}
	}
	return s
}
