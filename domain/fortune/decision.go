package fortune

import "fmt"

// MaxDailyRequests caps fortune readings per user per KST day.
const MaxDailyRequests = 4

// DefaultRetentionDays is how long quota records are kept before the
// retention worker deletes them.
const DefaultRetentionDays = 7

// Outcome is the terminal state of one admission attempt.
type Outcome string

const (
	OutcomeAdmitted      Outcome = "ADMITTED"
	OutcomeDuplicate     Outcome = "DUPLICATE"
	OutcomeQuotaExceeded Outcome = "QUOTA_EXCEEDED"
)

// Decision is the result of a single admission attempt. Policy rejections
// (duplicate question, exhausted quota) are regular Decision values rather
// than errors: callers branch on them as expected outcomes.
type Decision struct {
	Success   bool
	Outcome   Outcome
	Remaining int
	Message   string
}

// LimitCheck reports whether a user may still ask today. Remaining is the
// count left after the request being checked, not before it.
type LimitCheck struct {
	Allowed   bool
	Remaining int
	Message   string
}

// User-facing strings are part of the observable contract, not incidental.
const MsgDuplicateQuestion = "같은 질문은 하루에 한 번만 가능합니다. 다른 질문을 해주세요! 🔄"

func MsgQuotaExhausted() string {
	return fmt.Sprintf("오늘의 운세 조회 횟수(%d회)를 모두 사용하셨습니다. 내일 다시 이용해주세요. 🌙", MaxDailyRequests)
}

func MsgSuccess(remaining int) string {
	return fmt.Sprintf("운세 조회 완료! 오늘 %d회 더 이용 가능합니다. ✨", remaining)
}
