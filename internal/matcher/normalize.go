package matcher

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, turns punctuation into spaces and collapses runs
// of whitespace. The input is never modified.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	space := true
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// containsAtWordStart reports whether phrase occurs in text beginning at a word
// boundary. Both arguments must already be normalized.
func containsAtWordStart(text, phrase string) bool {
	offset := 0
	for {
		i := strings.Index(text[offset:], phrase)
		if i < 0 {
			return false
		}
		pos := offset + i
		if pos == 0 || text[pos-1] == ' ' {
			return true
		}
		offset = pos + 1
	}
}

// ContainsPhrase normalizes both arguments and reports whether phrase occurs
// in text at a word boundary. An empty phrase never matches.
func ContainsPhrase(text, phrase string) bool {
	phrase = Normalize(phrase)
	if phrase == "" {
		return false
	}
	return containsAtWordStart(Normalize(text), phrase)
}
