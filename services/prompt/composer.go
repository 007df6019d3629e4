package prompt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const fallbackTopic = "this concept"

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

var sectionKeywordPattern = regexp.MustCompile(buildSectionKeywordPattern())

func buildSectionKeywordPattern() string {
	var quoted []string
	for _, section := range promptSections {
		for _, keyword := range section.keywords {
			quoted = append(quoted, regexp.QuoteMeta(keyword))
		}
	}
	return `(?i)(` + strings.Join(quoted, "|") + `)`
}

// Compose builds the outbound model prompt for a message blob. A
// recognized operation trace wins outright; section detection never runs
// in that case.
func Compose(text string) string {
	if req, ok := ExtractOperation(text); ok {
		return BuildExecutionPrompt(req)
	}
	return BuildConceptPrompt(text)
}

// BuildExecutionPrompt asks for a per-iteration trace of the operation
// over the supplied array, including the target value when present.
func BuildExecutionPrompt(req *OperationRequest) string {
	var b strings.Builder

	b.WriteString("You are a helpful DSA tutor. Trace the ")
	b.WriteString(req.Operation)
	b.WriteString(" algorithm step by step")
	if req.Array != nil {
		b.WriteString(" on the array [")
		b.WriteString(formatArray(req.Array))
		b.WriteString("]")
	}
	if req.Target != nil {
		fmt.Fprintf(&b, ", looking for the value %d", *req.Target)
	}
	b.WriteString(". Narrate every iteration: which elements are compared or moved, ")
	b.WriteString("the state of the array afterwards, and why the step happens.")

	return b.String()
}

// BuildConceptPrompt selects explanatory sections from the fixed table
// and derives the residual topic by stripping the table keywords, filler
// words, and punctuation from the message. Every matched section is
// requested, in table order; with no match, all sections are requested.
func BuildConceptPrompt(text string) string {
	lower := strings.ToLower(text)

	var sections []string
	for _, section := range promptSections {
		for _, keyword := range section.keywords {
			if strings.Contains(lower, keyword) {
				sections = append(sections, section.name)
				break
			}
		}
	}

	if len(sections) == 0 {
		sections = lo.Map(promptSections, func(section promptSection, _ int) string {
			return section.name
		})
	}

	return fmt.Sprintf("You are a helpful DSA tutor. Explain the concept %q with focus on:\n%s",
		residualTopic(text), strings.Join(sections, "\n"))
}

func residualTopic(text string) string {
	cleaned := sectionKeywordPattern.ReplaceAllString(text, "")
	cleaned = nonAlphanumeric.ReplaceAllString(cleaned, "")

	kept := lo.Filter(strings.Fields(cleaned), func(word string, _ int) bool {
		return !topicStopwords[strings.ToLower(word)]
	})

	topic := strings.Join(kept, " ")
	if topic == "" {
		return fallbackTopic
	}
	return topic
}

func formatArray(values []float64) string {
	parts := lo.Map(values, func(value float64, _ int) string {
		return strconv.FormatFloat(value, 'f', -1, 64)
	})
	return strings.Join(parts, ", ")
}
