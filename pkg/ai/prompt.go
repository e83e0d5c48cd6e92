package ai

import "fmt"

// evaluationPrompt asks for the JSON shape ParseEvaluation reads
func evaluationPrompt(summary []byte) string {
	return fmt.Sprintf(`당신은 취업 준비생의 커리어 코치입니다. 아래 대시보드 요약(JSON)을 분석해 현재 상태를 평가하세요.

평가 기준:
- 취업 활동: 지원 수, 진행 중인 전형, 결과
- 자격증/스펙: 취득, 접수, 학습 현황
- 루틴/할일: 오늘 루틴 달성률과 할일 완료율
- 목표와 로드맵: 월별 계획 대비 진행 상황

반드시 아래 스키마의 JSON 객체만 출력하세요. 다른 텍스트는 쓰지 마세요.
{
  "overallScore": <0-100 정수>,
  "categories": [
    {"name": "<영역>", "score": <0-100 정수>, "analysis": "<현재 상태 분석>", "suggestion": "<개선 제안>"}
  ],
  "strengths": ["<강점>"],
  "improvements": ["<개선이 필요한 점>"],
  "actionItems": ["<이번 주에 할 일>"]
}

대시보드 요약:
%s`, summary)
}
