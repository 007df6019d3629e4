package prompt

import (
	"strings"

	"github.com/samber/lo"
)

// InDomain reports whether text mentions any data-structures or
// algorithms keyword. This is the gate run before every model call.
func InDomain(text string) bool {
	lower := strings.ToLower(text)

	return lo.SomeBy(domainKeywords, func(keyword string) bool {
		return strings.Contains(lower, keyword)
	})
}
