package domain

type Category string

const (
	CategoryLanguage      Category = "language"
	CategoryCertification Category = "certification"
	CategoryTech          Category = "tech"
	CategoryEtc           Category = "etc"
)

var CategoryLabels = map[Category]string{
	CategoryLanguage:      "어학",
	CategoryCertification: "자격증",
	CategoryTech:          "기술",
	CategoryEtc:           "기타",
}

func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusStudying   Status = "studying"
	StatusAcquired   Status = "acquired"
)

var StatusLabels = map[Status]string{
	StatusNotStarted: "미시작",
	StatusStudying:   "학습중",
	StatusAcquired:   "취득",
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

// WeakPoint is a skill or credential still to be acquired
type WeakPoint struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	CurrentLevel string   `json:"currentLevel"`
	TargetLevel  string   `json:"targetLevel"`
	Status       Status   `json:"status"`
	Notes        string   `json:"notes"`
	AcquiredDate string   `json:"acquiredDate"`
}

// HasGap reports whether both levels are known and differ
func (w WeakPoint) HasGap() bool {
	return w.CurrentLevel != "" && w.TargetLevel != "" && w.CurrentLevel != w.TargetLevel
}

// NeedsImprovement is true until the item is acquired and any level gap closed
func (w WeakPoint) NeedsImprovement() bool {
	return w.Status != StatusAcquired || w.HasGap()
}

// WithStatus moves w to status. Entering acquired stamps today when no date
// is recorded; leaving acquired clears the date.
func (w WeakPoint) WithStatus(status Status, today string) WeakPoint {
	switch {
	case status == StatusAcquired && w.AcquiredDate == "":
		w.AcquiredDate = today
	case status != StatusAcquired:
		w.AcquiredDate = ""
	}
	w.Status = status
	return w
}

func FilterByCategory(items []WeakPoint, category Category) []WeakPoint {
	if category == "" {
		return items
	}
	out := make([]WeakPoint, 0, len(items))
	for _, w := range items {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

type Stats struct {
	Total            int `json:"total"`
	NotStarted       int `json:"notStarted"`
	Studying         int `json:"studying"`
	Acquired         int `json:"acquired"`
	NeedsImprovement int `json:"needsImprovement"`
}

func Summarize(items []WeakPoint) Stats {
	st := Stats{Total: len(items)}
	for _, w := range items {
		switch w.Status {
		case StatusAcquired:
			st.Acquired++
		case StatusStudying:
			st.Studying++
		default:
			st.NotStarted++
		}
		if w.NeedsImprovement() {
			st.NeedsImprovement++
		}
	}
	return st
}
