package jquery

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	spinnerPolicyOnce sync.Once
	spinnerPolicy     *bluemonday.Policy
)

// SanitizeSpinner strips everything from spinner markup except a small set of
// inline elements. The jQuery UI tabs plugin injects the spinner into the tab
// label as HTML.
func SanitizeSpinner(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(spinnerSanitizer().Sanitize(trimmed))
}

func spinnerSanitizer() *bluemonday.Policy {
	spinnerPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "b", "i", "span", "img")
		policy.AllowAttrs("class").OnElements("em", "strong", "b", "i", "span", "img")
		policy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
		spinnerPolicy = policy
	})
	return spinnerPolicy
}
