package dedup

import (
	"strings"
	"unicode"
)

// normalize strips the characters the comparison must ignore: whitespace,
// common punctuation, and the informal Korean filler jamo (ㅋㅋ, ㅠㅠ...).
// Two questions count as duplicates only when the stripped strings are
// exactly equal; near-miss similarity is not attempted.
func normalize(question string) string {
	var b strings.Builder
	b.Grow(len(question))
	for _, r := range question {
		if isNoise(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isNoise(r rune) bool {
	switch r {
	case '.', ',', '!', '?', '~', 'ㅋ', 'ㅎ', 'ㅜ', 'ㅠ':
		return true
	}
	return unicode.IsSpace(r)
}
