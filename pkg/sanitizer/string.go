package sanitizer

import (
	"strings"
	"unicode"
)

// CaseMode selects the case transform applied by CleanString.
type CaseMode string

const (
	CaseNone  CaseMode = ""      // leave case unchanged
	CaseUpper CaseMode = "upper" // whole string uppercased
	CaseLower CaseMode = "lower" // whole string lowercased
	CaseTitle CaseMode = "title" // first letter of each word uppercased, rest lowercased
)

// CleanOptions configures CleanString. The zero value applies no case
// transform and keeps special characters.
type CleanOptions struct {
	Case          CaseMode
	RemoveSpecial bool
}

// CleanString normalises a string in a fixed order: runs of whitespace are
// collapsed to a single space and the ends trimmed; if RemoveSpecial is set,
// every character that is not a letter, digit, or whitespace is stripped (and
// whitespace re-collapsed so the result stays normalised); finally the case
// transform is applied. The operation is idempotent for fixed options. Empty
// input yields an empty string.
func CleanString(s string, opts CleanOptions) string {
	if s == "" {
		return ""
	}

	transforms := []func(string) string{NormalizeWhitespace}
	if opts.RemoveSpecial {
		transforms = append(transforms, keepAlphanumeric, NormalizeWhitespace)
	}

	switch opts.Case {
	case CaseUpper:
		transforms = append(transforms, strings.ToUpper)
	case CaseLower:
		transforms = append(transforms, strings.ToLower)
	case CaseTitle:
		transforms = append(transforms, titleCase)
	}

	return Apply(s, transforms...)
}

// NormalizeWhitespace replaces every run of whitespace with a single space
// and trims leading and trailing whitespace.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// keepAlphanumeric drops every character that is not a letter, digit, or
// whitespace. Unicode letters and digits are kept.
func keepAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, where a word is a maximal run of letters. Non-letter characters pass
// through unchanged and terminate the current word.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inWord := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			inWord = false
			b.WriteRune(r)
		case inWord:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			inWord = true
		}
	}

	return b.String()
}
