// Package textutils provides the merchant description cleanup stages. Every stage is a
// pure string function so it can be tested on its own; Cleaner composes them in order.
package textutils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// "TST* ", "SNACK* ": the whitespace after the asterisk is left for the final trim.
	tagStarPattern = regexp.MustCompile(`^[\p{L}\p{N}_]+\*(\s)`)
	// "SQ *"
	tagSpaceStarPattern = regexp.MustCompile(`^[\p{L}\p{N}_]+\s\*`)
)

// StripPunctuation removes every rune that is neither a letter, a digit nor whitespace.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// FirstLine returns the text before the first line break.
// Exports append wallet annotations such as "GOOGLE PAY" on a second line.
func FirstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

// StripPatterns removes a point-of-sale prefix tag anchored at the start of s:
// first a "<token>*" followed by whitespace, then a "<token> *".
//
//	StripPatterns("TST* Blue Bottle") == " Blue Bottle"
//	StripPatterns("SQ *Blue Bottle")  == "Blue Bottle"
func StripPatterns(s string) string {
	s = tagStarPattern.ReplaceAllString(s, "${1}")
	return tagSpaceStarPattern.ReplaceAllString(s, "")
}

// RemoveCharacters truncates s at the first rune after the first space that is neither
// a letter nor whitespace. The text before the first space is always kept, so
//
//	"TARGET 00034157091 ANN ARBOR MI" -> "TARGET "
//	"7-ELEVEN 34621 ANN ARBOR MI"     -> "7-ELEVEN "
//
// A string without a space is returned unchanged.
func RemoveCharacters(s string) string {
	firstSpace := strings.IndexByte(s, ' ')
	if firstSpace < 0 {
		return s
	}
	cut := strings.IndexFunc(s[firstSpace:], func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsSpace(r)
	})
	if cut < 0 {
		return s
	}
	return s[:firstSpace+cut]
}

// Cleaner normalizes raw merchant descriptions.
type Cleaner struct {
	smallWords WordSet
}

// NewCleaner returns a Cleaner that title-cases with the given connector words.
// A nil or empty list selects DefaultSmallWords.
func NewCleaner(smallWords []string) *Cleaner {
	if len(smallWords) == 0 {
		smallWords = DefaultSmallWords
	}
	return &Cleaner{smallWords: NewWordSet(smallWords...)}
}

// Clean runs the full pipeline. Order matters: punctuation goes before the line
// split and the casing, and truncation runs on the title-cased text.
func (c *Cleaner) Clean(description string) string {
	s := strings.TrimSpace(description)
	s = StripPunctuation(s)
	s = FirstLine(s)
	s = TitleCase(s, c.smallWords)
	s = StripPatterns(s)
	s = RemoveCharacters(s)
	return strings.TrimSpace(s)
}

var defaultCleaner = NewCleaner(nil)

// NormalizeDescription cleans a description with the default connector words.
func NormalizeDescription(description string) string {
	return defaultCleaner.Clean(description)
}
