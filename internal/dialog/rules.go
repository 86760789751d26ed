package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/onair-app/onair-server/internal/domain"
)

// requiredSlots defines elicitation priority: the first absent slot in this
// order is asked for next.
var requiredSlots = []string{"product", "order_number", "issue", "size_dir", "unopened"}

const continuePrefix = "교환 요청 계속 도와드릴게요."

var askTemplates = map[string][]string{
	"product": {
		"제품명(모델명)을 알려주시면 바로 확인해 드릴게요.",
		"사용하신 상품명을 한 줄로 알려주실 수 있을까요?",
	},
	"order_number": {
		"주문 번호를 알려주세요. 숫자만 주셔도 됩니다.",
		"확인을 위해 주문 번호가 필요합니다.",
	},
	"issue": {
		"교환/문의 사유를 한 문장으로만 적어주세요.",
		"어떤 문제가 있었는지 간단히 설명해 주실 수 있을까요?",
	},
	"size_dir": {
		"사이즈를 한 단계 작게/크게 중 어느 쪽으로 원하시나요?",
		"한 사이즈 다운/업 중 어떤 걸 원하시나요?",
	},
	"unopened": {
		"상품은 미개봉 상태인가요?",
		"포장은 개봉하지 않으셨나요?",
	},
	"confirm": {
		"말씀 주신 내용으로 접수해도 괜찮을까요?",
		"위 내용대로 진행해도 될까요?",
	},
}

func rotate(key string, turn int) string {
	arr := askTemplates[key]
	if len(arr) == 0 {
		return ""
	}
	return arr[turn%len(arr)]
}

// NextPrompt merges slots extracted from userText into slots and decides the
// next deterministic prompt: ask for the highest-priority missing slot, or
// summarize and ask for confirmation once everything is filled. Returns the
// prompt and the updated turn counter.
func NextPrompt(slots *domain.Slots, turn int, userText string) (string, int) {
	Merge(slots, ExtractSlots(userText))

	if missing := firstMissing(slots); missing != "" {
		return fmt.Sprintf("%s %s", continuePrefix, rotate(missing, turn)), turn + 1
	}

	summary := strings.Join(summaryPairs(slots), " / ")
	return fmt.Sprintf("확인 내용: %s. %s", summary, rotate("confirm", turn)), turn + 1
}

func firstMissing(slots *domain.Slots) string {
	for _, name := range requiredSlots {
		if !has(slots, name) {
			return name
		}
	}
	return ""
}

func has(slots *domain.Slots, name string) bool {
	switch name {
	case "product":
		return slots.Product != nil
	case "order_number":
		return slots.OrderNumber != nil
	case "issue":
		return slots.Issue != nil
	case "size_dir":
		return slots.SizeDir != nil
	case "unopened":
		return slots.Unopened != nil
	}
	return false
}

// summaryPairs renders the filled slots in elicitation order, which matches
// the order they were asked for.
func summaryPairs(slots *domain.Slots) []string {
	var pairs []string
	for _, name := range requiredSlots {
		if v, ok := value(slots, name); ok {
			pairs = append(pairs, fmt.Sprintf("%s: %s", name, v))
		}
	}
	return pairs
}

func value(slots *domain.Slots, name string) (string, bool) {
	switch name {
	case "product":
		if slots.Product != nil {
			return *slots.Product, true
		}
	case "order_number":
		if slots.OrderNumber != nil {
			return *slots.OrderNumber, true
		}
	case "issue":
		if slots.Issue != nil {
			return *slots.Issue, true
		}
	case "size_dir":
		if slots.SizeDir != nil {
			return *slots.SizeDir, true
		}
	case "unopened":
		if slots.Unopened != nil {
			return strconv.FormatBool(*slots.Unopened), true
		}
	}
	return "", false
}
