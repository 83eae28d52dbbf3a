package condition

import (
	"strconv"
	"strings"
)

var numberWords = map[string]int{
	"a": 1, "an": 1,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20,
	"hundred": 100,
}

var tensWords = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// ParseCountToken maps a digit string or an English number word to an
// integer. Compounds like "twenty-two" and "forty five" are accepted.
// Unrecognized tokens yield ok=false.
func ParseCountToken(token string) (int, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	if n, ok := numberWords[token]; ok {
		return n, true
	}
	if n, ok := tensWords[token]; ok {
		return n, true
	}
	// Compound tens: "twenty-two" or "twenty two".
	var parts []string
	if strings.ContainsRune(token, '-') {
		parts = strings.SplitN(token, "-", 2)
	} else {
		parts = strings.SplitN(token, " ", 2)
	}
	if len(parts) == 2 {
		tens, ok := tensWords[parts[0]]
		if !ok {
			return 0, false
		}
		unit, ok := numberWords[parts[1]]
		if !ok || unit >= 10 {
			return 0, false
		}
		return tens + unit, true
	}
	return 0, false
}
