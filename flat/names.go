package flat

import (
	"strings"
	"unicode"
)

// EnvName converts a dotted field path into an environment variable name:
// words are split on separators and case changes, joined with underscores and
// upper-cased. "BaseURL.API" becomes "BASE_URL_API".
func EnvName(name string) string {
	return strings.ToUpper(strings.Join(splitWords(name), "_"))
}

func splitWords(src string) []string {
	runes := []rune(src)
	words := make([]string, 0, 4)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush(i)
			continue
		}

		if start >= 0 && isBoundary(runes, i) {
			flush(i)
		}

		if start < 0 {
			start = i
		}
	}
	flush(len(runes))

	return words
}

func isSeparator(r rune) bool {
	return r == '.' || r == '_' || r == '-' || unicode.IsSpace(r)
}

// isBoundary reports whether a new word starts at runes[i].
func isBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]

	switch {
	case unicode.IsLower(prev) && (unicode.IsUpper(cur) || unicode.IsDigit(cur)):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur):
		// "HTTPRequest": the last capital of an acronym opens the next word.
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	}

	return false
}
