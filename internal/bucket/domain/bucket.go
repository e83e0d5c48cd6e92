package domain

// Category groups bucket list items
type Category string

const (
	CategoryTravel       Category = "여행"
	CategoryCareer       Category = "커리어"
	CategoryHealth       Category = "건강"
	CategoryLearning     Category = "학습"
	CategoryExperience   Category = "경험"
	CategoryRelationship Category = "관계"
	CategoryFinance      Category = "재정"
	CategoryOther        Category = "기타"
)

// Categories in display order
var Categories = []Category{
	CategoryTravel, CategoryCareer, CategoryHealth, CategoryLearning,
	CategoryExperience, CategoryRelationship, CategoryFinance, CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Status is the progress of a bucket list item; any status may follow any other
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusCompleted
}

// BucketItem is one life goal
type BucketItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  Category `json:"category"`
	Status    Status   `json:"status"`
	CreatedAt string   `json:"createdAt"`
}

// Stats counts items by status
type Stats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

func Summarize(items []BucketItem) Stats {
	s := Stats{Total: len(items)}
	for _, it := range items {
		switch it.Status {
		case StatusCompleted:
			s.Completed++
		case StatusInProgress:
			s.InProgress++
		default:
			s.Todo++
		}
	}
	return s
}
