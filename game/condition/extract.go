package condition

import "strings"

// trigger-timing keywords that may precede an intervening-if clause.
var triggerTimingPrefixes = []string{"when ", "whenever ", "at "}

// ExtractLeadingClause returns the leading "if ..." condition of the text:
// when the normalized, lowercased text begins with "if ", the result is
// "if " plus everything up to the first comma (or end of string).
// ok is false when the text does not start with an if-clause.
func ExtractLeadingClause(text string) (string, bool) {
	norm := strings.ToLower(NormalizeText(text))
	if !strings.HasPrefix(norm, "if ") {
		return "", false
	}
	body := norm[len("if "):]
	if i := strings.IndexByte(body, ','); i >= 0 {
		body = body[:i]
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", false
	}
	return "if " + body, true
}

// ExtractInterveningIfClause extracts the intervening-if condition from a
// full ability description. It first tries the leading "If X, ..." form;
// otherwise it accepts a ", if X," fragment only when the sentence begins
// with a trigger-timing keyword (when/whenever/at), so that effect text
// like "Draw a card. If you do, ..." is not mistaken for a condition.
// Pure and total: unparseable text yields ok=false.
func ExtractInterveningIfClause(text string) (string, bool) {
	if clause, ok := ExtractLeadingClause(text); ok {
		return clause, true
	}
	norm := strings.ToLower(NormalizeText(text))
	timed := false
	for _, prefix := range triggerTimingPrefixes {
		if strings.HasPrefix(norm, prefix) {
			timed = true
			break
		}
	}
	if !timed {
		return "", false
	}
	sentence := norm
	if i := strings.IndexByte(sentence, '.'); i >= 0 {
		sentence = sentence[:i]
	}
	idx := strings.Index(sentence, ", if ")
	if idx < 0 {
		return "", false
	}
	body := sentence[idx+len(", if "):]
	if i := strings.IndexByte(body, ','); i >= 0 {
		body = body[:i]
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", false
	}
	return "if " + body, true
}
