package prompt

import (
	"regexp"
	"strconv"
	"strings"
)

// OperationRequest is a recognized algorithm-trace request, derived from
// a single message and never persisted. Array and Target are optional;
// the operation label alone decides recognition.
type OperationRequest struct {
	Operation string
	Array     []float64
	Target    *int
}

var targetPattern = regexp.MustCompile(`(?i)find\s+(-?\d+)`)

// ExtractOperation recognizes messages like
// "Do a binary search to find 7 in [3,7,9,12]". Extraction is a pure
// function of the input: the operation phrase is looked up first, then
// the array literal and target value are extracted independently.
func ExtractOperation(text string) (*OperationRequest, bool) {
	lower := strings.ToLower(text)

	label := ""
	for _, op := range operationPhrases {
		if strings.Contains(lower, op.phrase) {
			label = op.label
			break
		}
	}
	if label == "" {
		return nil, false
	}

	req := &OperationRequest{
		Operation: label,
		Array:     extractArray(text),
	}

	if m := targetPattern.FindStringSubmatch(text); m != nil {
		if target, err := strconv.Atoi(m[1]); err == nil {
			req.Target = &target
		}
	}

	return req, true
}

// extractArray parses the first bracketed list literal. One malformed
// token rejects the whole array; no marker values are ever produced.
func extractArray(text string) []float64 {
	start := strings.Index(text, "[")
	if start == -1 {
		return nil
	}
	length := strings.Index(text[start:], "]")
	if length == -1 {
		return nil
	}

	tokens := strings.Split(text[start+1:start+length], ",")

	values := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return nil
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return nil
	}
	return values
}
