// Package scenario holds the static role-play scenario catalog: opening
// lines per role, behavioral hints, and the model instruction builder.
package scenario

import (
	"github.com/onair-app/onair-server/internal/domain"
)

// Entry is an immutable catalog record.
type Entry struct {
	ID       string
	Openings map[domain.Role]string
	Hint     string
}

// DefaultScenario is used when a start request names no scenario.
const DefaultScenario = "exchange"

var defaultEntry = Entry{
	ID: "default",
	Openings: map[domain.Role]string{
		domain.RoleStaff:    "안녕하세요, 무엇을 도와드릴까요?",
		domain.RoleCustomer: "안녕하세요. 상담 가능하실까요?",
	},
}

// serviceScenarios are customer-service style premises where the AI should
// verify the caller's identity once (order number, reservation name, ...).
var serviceScenarios = map[string]bool{
	"inquiry":        true,
	"exchange":       true,
	"order":          true,
	"shipping":       true,
	"reschedule":     true,
	"shipping_delay": true,
	"consult":        true,
}

var catalog = map[string]Entry{
	"consult": {
		ID: "consult",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "안녕하세요, 동양병원 상담센터입니다. 예약 도와드릴까요?",
			domain.RoleCustomer: "안녕하세요, 상담 예약하려고 전화드렸습니다.",
		},
	},
	"inquiry": {
		ID: "inquiry",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "안녕하세요, ON:AIR 고객센터입니다. 어떤 문의 주실까요?",
			domain.RoleCustomer: "안녕하세요, 상품 관련 문의가 있어서 연락드렸습니다.",
		},
	},
	"exchange": {
		ID: "exchange",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "네, 교환 관련 상담 도와드리겠습니다. 상품명과 주문번호가 어떻게 되시나요?",
			domain.RoleCustomer: "안녕하세요, 교환 문의하려고 채팅 남깁니다.",
		},
	},
	"order": {
		ID: "order",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "주문 제작 확인 도와드리겠습니다. 주문 번호 알려주시겠어요?",
			domain.RoleCustomer: "안녕하세요, 주문 제작 확인 때문에 연락드렸습니다.",
		},
	},
	"shipping": {
		ID: "shipping",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "안녕하세요, ON:AIR 배송센터입니다. 주문번호나 송장번호 알려주실 수 있을까요?",
			domain.RoleCustomer: "안녕하세요, 배송 관련해서 문의드리려고 전화했습니다.",
		},
		Hint: "배송 문의: 반드시 주문번호/송장번호 확인 → 택배사/배송상태/예상도착일 순서로 안내. 필요 시 고객이 직접 조회할 수 있는 경로도 1줄로 제시.",
	},
	"reschedule": {
		ID: "reschedule",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "안녕하세요, 예약 변경 도와드리겠습니다. 예약자 성함과 기존 예약일자 확인해도 될까요?",
			domain.RoleCustomer: "안녕하세요, 예약 일정을 변경하고 싶어서 연락드렸습니다.",
		},
		Hint: "예약 변경: 예약자명/연락처/예약번호 중 2개 이상 확인. 가능한 시간 2~3개 제안 → 확정 멘트와 변경 요약을 마지막에 제공.",
	},
	"shipping_delay": {
		ID: "shipping_delay",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "불편을 드려 죄송합니다. 주문번호/수령인 성함을 알려주시면 지연 사유와 예상 도착일 바로 확인해드릴게요.",
			domain.RoleCustomer: "안녕하세요, 배송이 많이 지연되어 문의드립니다.",
		},
		Hint: "배송 지연: 사과 멘트로 시작. 지연 사유/현재 위치/새 예상 도착일을 간결히. 필요한 경우 보상 또는 대안(부분환불/재발송/수령지 변경) 1가지 제안.",
	},
	"interview_step1": {
		ID: "interview_step1",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "안녕하세요, 면접 연습 Step 1(기본 질문)입니다. 간단히 자기소개부터 시작해볼까요?",
			domain.RoleCustomer: "안녕하세요, 면접 기본 질문부터 연습해보고 싶습니다.",
		},
		Hint: "면접 Step1(기본 질문): 자기소개, 지원동기, 직무 이해도 등 기본 3문항을 순차적으로 묻고, 각 답변 뒤에 1문장 피드백 제공. 답변은 2~4문장으로 유도.",
	},
	"interview_step2": {
		ID: "interview_step2",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "Step 2(자기소개·강점) 연습을 시작할게요. 60초 내 자기소개부터 부탁드립니다.",
			domain.RoleCustomer: "자기소개와 강점 위주로 연습하고 싶습니다.",
		},
		Hint: "면접 Step2(자기소개·강점): STAR 구조(S/T/A/R)로 유도. 강점 1~2개를 구체 사례와 함께 말하도록 질문. 각 답변 후 요약 칭찬 1문장과 개선 팁 1문장 추가.",
	},
	"interview_step3": {
		ID: "interview_step3",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "Step 3(상황 질문)입니다. 최근 갈등 상황을 어떻게 해결하셨는지 STAR 방식으로 말씀해주시겠어요?",
			domain.RoleCustomer: "실전 상황 질문 위주로 연습해보고 싶어요.",
		},
		Hint: "면접 Step3(상황 질문): 갈등 해결/실수 대응/리더십 중 하나를 선정해 심층 질문 2~3개 진행. 끝에 핵심 포인트를 2줄로 정리.",
	},
	"greeting": {
		ID: "greeting",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "안녕하세요! 요즘 어떻게 지내세요? 오늘 하루 중 가장 좋았던 순간 하나만 공유해보실래요?",
			domain.RoleCustomer: "안녕하세요!",
		},
		Hint: "일상-안부: 개방형 질문 1개 → 공감 1문장 → 되묻기 1개 흐름. 톤은 부담 없이 따뜻하게.",
	},
	"make_appointment": {
		ID: "make_appointment",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "좋아요, 약속을 잡아볼게요. 가능한 날짜/시간/장소를 한 가지씩 말씀해주시겠어요?",
			domain.RoleCustomer: "안녕하세요, 저 상담 예약 좀 할 수 있을까요?",
		},
		Hint: "일상-약속: 날짜/시간/장소/목적 4요소 체크. 후보 2개 제안 후 확정 멘트와 캘린더 메모형 요약 1줄 제공.",
	},
	"hobby_chat": {
		ID: "hobby_chat",
		Openings: map[domain.Role]string{
			domain.RoleStaff:    "취미 이야기 좋아요! 요즘 가장 즐겨 하시는 취미가 무엇인가요?",
			domain.RoleCustomer: "취미 얘기하면서 자연스럽게 대화 연습해보고 싶어요.",
		},
		Hint: "일상-취미: 취향 탐색 질문 2개 → 공감/확장 질문 1개 → 다음 액션(콘텐츠/모임 제안) 1개.",
	},
}

// Resolve looks up a scenario. Unknown ids resolve to the generic default
// entry; there is no error path.
func Resolve(id string) Entry {
	if e, ok := catalog[id]; ok {
		return e
	}
	return defaultEntry
}

// Opening returns the opening line the AI counterpart speaks for the given
// scenario and role. Falls back to the generic staff opening when the role
// key is absent.
func Opening(id string, aiRole domain.Role) string {
	e := Resolve(id)
	if line, ok := e.Openings[aiRole]; ok {
		return line
	}
	return defaultEntry.Openings[domain.RoleStaff]
}

// IsService reports whether the scenario is a customer-service premise
// requiring a one-time identity check.
func IsService(id string) bool {
	return serviceScenarios[id]
}
