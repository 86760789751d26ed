// Package dialog implements the deterministic dialogue machinery: heuristic
// slot extraction, the rule-based fallback responder, and context windowing
// for model calls.
package dialog

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/onair-app/onair-server/internal/domain"
)

const issueMaxLen = 80

var (
	orderNumberRe = regexp.MustCompile(`\d{6,}`)
	productRe     = regexp.MustCompile(`["“]?([가-힣A-Za-z0-9\-_\s]{2,20})["”]?`)
	digitsOnlyRe  = regexp.MustCompile(`^[0-9]+$`)
)

var (
	sizeDownKeywords = []string{"한 사이즈 작", "작게", "다운"}
	sizeUpKeywords   = []string{"한 사이즈 크", "크게", "업"}
	issueKeywords    = []string{"오염", "파손", "불량", "색상", "사이즈", "교환", "반품", "작다", "크다"}
)

// ExtractSlots runs the heuristic patterns over raw text and returns the
// recognized fields. Best-effort only: unrecognized features stay absent and
// there is no error path.
func ExtractSlots(text string) domain.Slots {
	var slots domain.Slots
	t := strings.TrimSpace(text)
	if t == "" {
		return slots
	}

	if m := orderNumberRe.FindString(t); m != "" {
		slots.OrderNumber = strptr(m)
	}

	// "미개봉" contains "개봉", so the unopened check must come first.
	if strings.Contains(t, "미개봉") {
		slots.Unopened = boolptr(true)
	} else if strings.Contains(t, "개봉") {
		slots.Unopened = boolptr(false)
	}

	// Down-family keywords are checked first and win ties.
	if containsAny(t, sizeDownKeywords) {
		slots.SizeDir = strptr("down")
	} else if containsAny(t, sizeUpKeywords) {
		slots.SizeDir = strptr("up")
	}

	if containsAny(t, issueKeywords) {
		slots.Issue = strptr(truncateRunes(t, issueMaxLen))
	}

	if m := productRe.FindStringSubmatch(t); m != nil {
		cand := strings.TrimSpace(m[1])
		if utf8.RuneCountInString(cand) >= 2 && !digitsOnlyRe.MatchString(cand) {
			slots.Product = strptr(cand)
		}
	}

	return slots
}

// Merge copies the present fields of src into dst. Fields are only ever
// added or overwritten, never cleared.
func Merge(dst *domain.Slots, src domain.Slots) {
	if src.Product != nil {
		dst.Product = src.Product
	}
	if src.OrderNumber != nil {
		dst.OrderNumber = src.OrderNumber
	}
	if src.Issue != nil {
		dst.Issue = src.Issue
	}
	if src.SizeDir != nil {
		dst.SizeDir = src.SizeDir
	}
	if src.Unopened != nil {
		dst.Unopened = src.Unopened
	}
}

func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }
