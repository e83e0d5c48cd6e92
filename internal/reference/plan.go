package reference

// Certification progress values
const (
	SpecPassed     = "passed"
	SpecRegistered = "registered"
	SpecStudying   = "studying"
	SpecNotStarted = "not_started"
)

// SpecItem is one certification on the plan
type SpecItem struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

var SpecItems = []SpecItem{
	{"정보처리기사", SpecPassed},
	{"PC정비사 2급", SpecPassed},
	{"네트워크 관리사 2급", SpecPassed},
	{"SQLD", SpecRegistered},
	{"한국사능력검정시험", SpecNotStarted},
	{"TOEIC", SpecNotStarted},
	{"TOEIC Speaking", SpecNotStarted},
	{"OPIc", SpecNotStarted},
	{"AWS Cloud Practitioner", SpecNotStarted},
	{"AWS SAA", SpecNotStarted},
	{"JLPT", SpecNotStarted},
	{"JPT", SpecNotStarted},
}

type Finance struct {
	NetAsset        string `json:"netAsset"`
	MonthlySaving   string `json:"monthlySaving"`
	InvestmentRatio string `json:"investmentRatio"`
}

var FinanceSnapshot = Finance{
	NetAsset:        "약 8,000만원",
	MonthlySaving:   "0원",
	InvestmentRatio: "미국주식 87.5%",
}

type RoadmapMonth struct {
	Month string   `json:"month"`
	Items []string `json:"items"`
}

var Roadmap = []RoadmapMonth{
	{"2026년 2월", []string{"SQLD 시험 집중 준비", "취업 공고 탐색 및 지원 (주 2건 목표)", "일상 루틴 정착 (매일 3개 루틴 실행)"}},
	{"2026년 3월", []string{"SQLD 제60회 시험 (3/7)", "TOEIC 접수 및 준비 시작", "취업 지원 지속 (월 5건 이상)"}},
	{"2026년 4월", []string{"국가직 9급 필기시험 (4/4)", "한국사능력검정 제78회 접수 (4/21~28)", "TOEIC 공부 본격화"}},
	{"2026년 5월", []string{"한국사 제78회 시험 (5/23)", "국가직 필기 합격자 발표 (5/8)", "SQLD 제61회 접수 (불합격 시)"}},
	{"2026년 6~7월", []string{"국가직 면접 준비 (합격 시)", "TOEIC 목표 점수 달성 (700+)", "OPIc/토익스피킹 준비 시작"}},
}

type Goal struct {
	Category string `json:"category"`
	Goal     string `json:"goal"`
	Deadline string `json:"deadline"`
}

var Goals = []Goal{
	{"취업", "공공기관/준정부기관 전산직 정규직 입사", "2026년 하반기"},
	{"자격증", "SQLD 취득", "2026년 3월"},
	{"자격증", "한국사능력검정 2급 이상 취득", "2026년 상반기"},
	{"어학", "TOEIC 700점 이상", "2026년 6월"},
	{"습관", "매일 루틴 80% 이상 달성 유지", "지속"},
}

// CompanyTarget is a public-sector IT employer on the watch list
type CompanyTarget struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

var CompanyTargets = []CompanyTarget{
	{"police-cyber", "경찰청 사이버수사대", "👮", "사이버범죄 수사, 디지털 포렌식, 사이버 보안 업무를 담당하는 경찰 특채"},
	{"fire-it", "소방청 정보통신(전산) 경력경쟁채용", "🚒", "119 시스템, 소방정보망 구축/운영, 소방청 IT 인프라 관리 업무"},
	{"fire-investigator", "소방 화재조사관", "🔥", "화재 원인 규명, CCTV/블랙박스 등 디지털 증거 분석, 디지털포렌식 업무"},
	{"civil-servant-9", "전산직 9급 공무원", "🏛️", "국가/지방 공공기관의 전산 시스템 구축, 운영, 유지보수 담당"},
	{"military-civil", "군무원 전산직", "🎖️", "국방부/각 군 본부의 정보체계 구축, 운영, 보안 업무 담당"},
	{"nis", "국가정보원 IT직", "🕵️", "국가 사이버안보, 정보보안 연구개발, 암호 기술 개발 등 첨단 보안 업무"},
	{"kisa", "KISA (한국인터넷진흥원)", "🌐", "인터넷 보안, 개인정보보호, 사이버 침해대응 등 국가 인터넷 정책 수행"},
}

// Catalog is every reference list in one value
type Catalog struct {
	Schedule       []ScheduleEvent `json:"schedule"`
	FixedRoutines  []Routine       `json:"fixedRoutines"`
	DailyTasks     []Routine       `json:"dailyTasks"`
	SpecItems      []SpecItem      `json:"specItems"`
	Finance        Finance         `json:"finance"`
	Roadmap        []RoadmapMonth  `json:"roadmap"`
	Goals          []Goal          `json:"goals"`
	CompanyTargets []CompanyTarget `json:"companyTargets"`
}

func All() Catalog {
	return Catalog{
		Schedule:       DailySchedule,
		FixedRoutines:  FixedRoutines,
		DailyTasks:     DailyTasks,
		SpecItems:      SpecItems,
		Finance:        FinanceSnapshot,
		Roadmap:        Roadmap,
		Goals:          Goals,
		CompanyTargets: CompanyTargets,
	}
}
