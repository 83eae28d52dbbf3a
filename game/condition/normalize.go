package condition

import "strings"

// NormalizeText canonicalizes ability text for clause matching: smart
// quotes become straight quotes, unicode dashes become hyphens, and all
// whitespace runs collapse to single spaces. Word content and case are
// preserved, and normalizing twice equals normalizing once. Empty input
// yields an empty string.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '‘', '’', 'ʼ': // curly single quotes
			return '\''
		case '“', '”': // curly double quotes
			return '"'
		case '–', '—', '−': // en dash, em dash, minus sign
			return '-'
		case ' ': // non-breaking space
			return ' '
		}
		return r
	}, text)
	return strings.Join(strings.Fields(replaced), " ")
}
