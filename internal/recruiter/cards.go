package recruiter

import (
	"regexp"
	"strings"
)

// cardDirectivePattern matches the bracket tag the completion service
// is asked to emit, e.g. [PROJECT_CARDS: carbon-calculator, e-waste].
// The tag is a convention, not a contract: the model may omit it,
// so absence is never an error.
var cardDirectivePattern = regexp.MustCompile(`(?i)\[PROJECT_CARDS:\s*([^\]]+)\]`)

// extractCardDirective strips the first card directive from the raw
// completion text and returns the cleaned display text plus the
// directive's project ids, trimmed and lowercased. At most one tag is
// recognized per response.
func extractCardDirective(raw string) (string, []string) {
	match := cardDirectivePattern.FindStringSubmatchIndex(raw)
	if match == nil {
		return raw, nil
	}

	clean := strings.TrimSpace(raw[:match[0]] + raw[match[1]:])
	idList := raw[match[2]:match[3]]

	var ids []string
	for _, part := range strings.Split(idList, ",") {
		id := strings.ToLower(strings.TrimSpace(part))
		if id != "" {
			ids = append(ids, id)
		}
	}
	return clean, ids
}
