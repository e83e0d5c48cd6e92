package provision

// SheetConfig names a tab and its ordered header row
type SheetConfig struct {
	Key     string
	Title   string
	Headers []string
}

// Workbook tab keys
const (
	TabJapanese        = "japanese"
	TabPortfolio       = "portfolio"
	TabExperience      = "experience"
	TabApplication     = "application"
	TabTodayTasks      = "todayTasks"
	TabRoutineTemplate = "routineTemplate"
	TabRoutineLog      = "routineLog"
	TabAppliedCompany  = "appliedCompany"
	TabWeakPoints      = "weakPoints"
)

// Tabs are the nine tabs of the LifeOps Data spreadsheet, in creation order
var Tabs = []SheetConfig{
	{Key: TabJapanese, Title: "일본어 학습", Headers: []string{"id", "date", "characters", "practiceCount", "note"}},
	{Key: TabPortfolio, Title: "포트폴리오 작업", Headers: []string{"id", "date", "projectName", "problem", "action", "tech", "result", "link", "screenshots", "demoVideo"}},
	{Key: TabExperience, Title: "공고 수집", Headers: []string{"id", "date", "companyName", "position", "url", "deadline", "notes"}},
	{Key: TabApplication, Title: "지원 현황", Headers: []string{"id", "name", "logo", "tier", "position", "status", "deadline", "appliedDate", "notes", "salary", "techStack", "url"}},
	{Key: TabTodayTasks, Title: "오늘 할일", Headers: []string{"id", "title", "completed", "due", "createdAt"}},
	{Key: TabRoutineTemplate, Title: "루틴 템플릿", Headers: []string{"id", "label", "detail", "category", "order", "actionUrl", "actionLabel"}},
	{Key: TabRoutineLog, Title: "루틴 기록", Headers: []string{"id", "routineId", "label", "detail", "date", "completed", "completedAt"}},
	{Key: TabAppliedCompany, Title: "지원회사", Headers: []string{"id", "companyName", "position", "appliedDate", "status", "deadline", "notes", "result", "url"}},
	{Key: TabWeakPoints, Title: "부족한점", Headers: []string{"id", "name", "category", "currentLevel", "targetLevel", "status", "notes", "acquiredDate"}},
}

// Tab looks up a workbook tab by key
func Tab(key string) (SheetConfig, bool) {
	for _, t := range Tabs {
		if t.Key == key {
			return t, true
		}
	}
	return SheetConfig{}, false
}

// MustTab is Tab for keys known at compile time
func MustTab(key string) SheetConfig {
	t, ok := Tab(key)
	if !ok {
		panic("provision: unknown tab " + key)
	}
	return t
}
