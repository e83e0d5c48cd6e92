package domain

import "lifeops-backend/pkg/fuzzy"

// Status is where an application stands
type Status string

const (
	StatusApplied    Status = "applied"
	StatusDocument   Status = "document"
	StatusInterview1 Status = "interview1"
	StatusInterview2 Status = "interview2"
	StatusOffer      Status = "offer"
	StatusRejected   Status = "rejected"
	StatusWaiting    Status = "waiting"
)

// Statuses in display order
var Statuses = []Status{
	StatusApplied, StatusDocument, StatusInterview1, StatusInterview2,
	StatusOffer, StatusRejected, StatusWaiting,
}

// StatusLabels are the display names
var StatusLabels = map[Status]string{
	StatusApplied:    "지원 완료",
	StatusDocument:   "서류 통과",
	StatusInterview1: "1차 면접",
	StatusInterview2: "최종 면접",
	StatusOffer:      "합격",
	StatusRejected:   "불합격",
	StatusWaiting:    "결과 대기",
}

// transitions is the forward graph; offer and rejected reset to applied
var transitions = map[Status][]Status{
	StatusApplied:    {StatusDocument, StatusWaiting, StatusRejected},
	StatusWaiting:    {StatusDocument, StatusRejected},
	StatusDocument:   {StatusInterview1, StatusRejected},
	StatusInterview1: {StatusInterview2, StatusRejected},
	StatusInterview2: {StatusOffer, StatusRejected},
	StatusOffer:      {StatusApplied},
	StatusRejected:   {StatusApplied},
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

// Next lists the statuses reachable from s in one step
func (s Status) Next() []Status {
	return append([]Status(nil), transitions[s]...)
}

// CanTransition reports whether from → to is an edge of the graph
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AppliedCompany is one row of the 지원회사 tab
type AppliedCompany struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	AppliedDate string `json:"appliedDate"`
	Status      Status `json:"status"`
	Deadline    string `json:"deadline"`
	Notes       string `json:"notes"`
	Result      string `json:"result"`
	URL         string `json:"url"`
}

// FilterByStatus keeps the companies with the given status in their
// original relative order. An empty status keeps everything.
func FilterByStatus(items []AppliedCompany, status Status) []AppliedCompany {
	if status == "" {
		return items
	}
	out := make([]AppliedCompany, 0, len(items))
	for _, c := range items {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// Stats counts applications by stage
type Stats struct {
	Total      int            `json:"total"`
	InProgress int            `json:"inProgress"`
	Waiting    int            `json:"waiting"`
	Offers     int            `json:"offers"`
	Rejected   int            `json:"rejected"`
	ByStatus   map[Status]int `json:"byStatus"`
}

// InProgress reports whether the application has passed screening and is
// still open
func (s Status) InProgress() bool {
	return s == StatusDocument || s == StatusInterview1 || s == StatusInterview2
}

func Summarize(items []AppliedCompany) Stats {
	st := Stats{Total: len(items), ByStatus: make(map[Status]int, len(Statuses))}
	for _, s := range Statuses {
		st.ByStatus[s] = 0
	}
	for _, c := range items {
		st.ByStatus[c.Status]++
		switch {
		case c.Status.InProgress():
			st.InProgress++
		case c.Status == StatusWaiting:
			st.Waiting++
		case c.Status == StatusOffer:
			st.Offers++
		case c.Status == StatusRejected:
			st.Rejected++
		}
	}
	return st
}

// Search keeps applications matching query on name, position or notes,
// closest first
func Search(items []AppliedCompany, query string) []AppliedCompany {
	return fuzzy.Filter(items, query, func(c AppliedCompany) []string {
		return []string{c.CompanyName, c.Position, c.Notes}
	})
}
