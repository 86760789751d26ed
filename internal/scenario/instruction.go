package scenario

import (
	"fmt"
	"strings"

	"github.com/onair-app/onair-server/internal/domain"
)

// Instruction builds the system text sent to the model for a dialogue turn:
// persona and brevity directives, the scenario tag, a one-time identity
// check for service scenarios, the catalog hint if any, and a modality
// style line.
func Instruction(id string, modality domain.Modality) string {
	lines := []string{
		"너는 ON:AIR 콜포비아 극복 훈련에서 상담원 역할을 맡는다.",
		"반복하지 말고 간결히 1~3문장으로 답하며, 필요한 경우 질문 1개를 덧붙여라.",
	}
	if id != "" {
		lines = append(lines, fmt.Sprintf("[상황: %s]", id))
	}
	if IsService(id) {
		lines = append(lines, "상황에 알맞게 고객의 정보를 한 번은 확인해야 한다. (예: 주문번호, 예약자 이름 등)")
	}
	if e := Resolve(id); e.Hint != "" {
		lines = append(lines, fmt.Sprintf("[시나리오 가이드] %s", e.Hint))
	}
	if modality == domain.ModalityCall {
		lines = append(lines, "전화 상황: 음성 대화체로 간결히.")
	} else {
		lines = append(lines, "채팅 상황: 예의 바르고 간결히.")
	}
	return strings.Join(lines, "\n")
}
