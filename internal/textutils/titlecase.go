package textutils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSmallWords are the connector words kept lower-case when they are not the
// first word of a description.
var DefaultSmallWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "en", "for", "if",
	"in", "of", "on", "or", "the", "to", "v", "via", "vs",
}

// WordSet is a case-insensitive set of words.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from words.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Contains reports whether word is in the set, ignoring case.
func (s WordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// TitleCase upper-cases the first letter of every whitespace-delimited word and
// lower-cases the rest. Words in small stay lower-case unless they open the string.
// Whitespace is preserved as is.
func TitleCase(s string, small WordSet) string {
	var b strings.Builder
	b.Grow(len(s))

	index := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if unicode.IsSpace(r) {
			b.WriteString(s[:size])
			s = s[size:]
			continue
		}

		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		b.WriteString(titleWord(s[:end], index, small))
		s = s[end:]
		index++
	}
	return b.String()
}

func titleWord(word string, index int, small WordSet) string {
	lower := strings.ToLower(word)
	if index > 0 && small.Contains(lower) {
		return lower
	}
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(first)) + lower[size:]
}
