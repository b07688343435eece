package chatbot

import (
	"strings"
	"unicode"
)

// normalize lowercases text, replaces punctuation with spaces and returns
// both the joined form (for phrase matching) and the word list (for
// single-token matching).
func normalize(text string) (string, []string) {
	lower := strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '@' || r == '.' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	words := strings.Fields(b.String())
	return strings.Join(words, " "), words
}

// matchKeyword reports whether kw occurs in the normalized text. Single
// words must match a whole token so that "hi" does not fire inside "this";
// phrases match on the joined form.
func matchKeyword(normalized string, words []string, kw string) bool {
	if strings.ContainsRune(kw, ' ') {
		return strings.Contains(normalized, kw)
	}
	for _, w := range words {
		if w == kw {
			return true
		}
	}
	return false
}
