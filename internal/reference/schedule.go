// Package reference holds the fixed data the dashboard is built around:
// the daily schedule, routine checklists, certification plan, finance
// snapshot, roadmap, goals and target employers.
package reference

// ScheduleEvent is one block of the daily schedule, times as HH:mm
type ScheduleEvent struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Title     string `json:"title"`
}

// DailySchedule runs from 11:30 to 23:30
var DailySchedule = []ScheduleEvent{
	{"11:30", "12:10", "몸 깨우기 + 정리 (물 한 컵, 세면/양치, 스트레칭 5분, 방 환기, 할 일 메모)"},
	{"12:10", "12:40", "첫 끼(브런치) - 밥/빵 + 단백질, 커피/차 한 번"},
	{"12:40", "13:20", "유산소 (워밍업 5분 → 천국의 계단 20분 → 쿨다운 5분 + 스트레칭)"},
	{"13:20", "14:00", "샤워 + 작업 세팅 (샤워/로션/옷, 책상 정리, 타이머 준비)"},
	{"14:00", "15:30", "취업 준비 [핵심1] - 최근 1개 프로젝트 정리, STAR 3줄, 포트폴리오 링크 모으기"},
	{"15:30", "15:50", "쉬는 시간 (10분 걷기/정리/설거지, 눈/목 스트레칭)"},
	{"15:50", "16:50", "일본어 1시간 [핵심2] - 히라가나 10개 + 단어 5개 + 소리내어 읽기"},
	{"16:50", "18:10", "개발/포트폴리오 [핵심3] - 프로젝트 1개, 기능 1개, README + 스크린샷, 커밋 1번"},
	{"18:10", "18:50", "근력운동 30분 + 마무리 (스쿼트/푸쉬업/로우/플랭크 + 스트레칭 5분)"},
	{"18:50", "20:00", "저녁 + 리셋 (저녁 식사, 식후 10분 걷기)"},
	{"20:00", "21:00", "지원/정리 1시간 - 회사/공고 3개 저장, 이력서 수정 메모 3줄"},
	{"21:00", "23:00", "자유시간 (가벼운 취미/휴식)"},
	{"23:00", "23:30", "마감 루틴 - 내일 할 일 3개 적고 종료"},
}

// Routine is a checklist item repeated every day
type Routine struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Detail      string `json:"detail,omitempty"`
	Category    string `json:"category,omitempty"`
	Order       int    `json:"order"`
	ActionURL   string `json:"actionUrl,omitempty"`
	ActionLabel string `json:"actionLabel,omitempty"`
}

// FixedRoutines is the daily checklist, in display order
var FixedRoutines = []Routine{
	{ID: "r-11", Label: "(건강) 운동하기", Detail: "유산소 or 근력 운동 30분 (산책/러닝/홈트)", Category: "건강", Order: 1},
	{ID: "r-3", Label: "(취업) 취업루틴", Detail: "공고 검색 > 이력서 맞춤 수정 > 자소서 작성 > 포폴 정리", Category: "취업", Order: 2, ActionURL: "/employment", ActionLabel: "취업관리"},
	{ID: "r-12", Label: "(취업) 면접 준비", Detail: "기술면접 질문 1개 답변 정리 + 인성면접 예상 질문 연습", Category: "취업", Order: 3},
	{ID: "r-4", Label: "(스펙) 일본어 실전 학습", Detail: "평일: 인터넷 강의 30분 → Netflix 1편 (자막 학습 모드) / 주말: Netflix 2-3편 몰아보기 + 강의 복습", Category: "스펙", Order: 4},
	{ID: "r-2", Label: "(스펙) 토익스피킹 공부하기", Detail: "평일(40분): 강의 20분(템플릿 학습) + 모의고사 1-2문제 풀고 녹음 20분 / 주말(1-2시간): 모의고사 1회 풀기", Category: "스펙", Order: 3},
	{ID: "r-5", Label: "(스펙) SQLD 공부하기", Detail: "SQLD 인터넷 강의 1시간 + SQLD 문제 풀이 40분", Category: "스펙", Order: 4},
	{ID: "r-6", Label: "(스펙) 코딩테스트 1문제 풀기", Detail: "매일 1문제 풀기 (프로그래머스/백준)", Category: "스펙", Order: 5},
	{ID: "r-8", Label: "(스펙) CS 기초 공부", Detail: "OS, 네트워크, DB, 자료구조 중 1주제 30분 학습 (면접 + 코테 대비)", Category: "스펙", Order: 6},
	{ID: "r-9", Label: "(스펙) 한국사능력검정시험 준비", Detail: "기출문제 풀이 or 강의 30분 (공공기관 전산직 필수)", Category: "스펙", Order: 7},
	{ID: "r-7", Label: "(스펙) 학습서 보기", Detail: "일본어 학습서 + 토익스피킹 학습서 읽기", Category: "스펙", Order: 8},
	{ID: "r-10", Label: "(스펙) TOEIC 공부", Detail: "LC/RC 문제 풀이 30분 (공공기관 커트라인 대비)", Category: "스펙", Order: 11},
}

// FindRoutine looks up a fixed routine by id
func FindRoutine(id string) (Routine, bool) {
	for _, r := range FixedRoutines {
		if r.ID == id {
			return r, true
		}
	}
	return Routine{}, false
}

// DailyTasks are added to the task list once a day
var DailyTasks = []Routine{
	{ID: "r0-2", Label: "(스펙) 프로젝트 관리", Detail: "프로젝트 문서 1개 정리", ActionURL: "/portfolio", ActionLabel: "프로젝트 관리"},
	{ID: "r0-3", Label: "(스펙) 일본어 JLPT 공부", Detail: "JLPT 강의 1개 > JLPT 책 10분 > 단어/문법 10개 암기", ActionURL: "/japanese", ActionLabel: "일본어"},
	{ID: "r0-4", Label: "(스펙) 토익스피킹 자격증 따기", Detail: "토익스피킹 문제 풀이 or 모범답안 암기 or 실전 연습"},
	{ID: "r0-5", Label: "(취업) 취업루틴", Detail: "공고 1개 체크 > 이력서 1줄 수정 > 포폴 1개 정리", ActionURL: "/employment", ActionLabel: "취업관리"},
}
