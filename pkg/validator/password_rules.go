package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minPasswordLength = 8

// Password requirement messages, reported in this fixed order.
const (
	msgPasswordLength     = "must be at least 8 characters long"
	msgPasswordUppercase  = "must contain at least one uppercase letter"
	msgPasswordLowercase  = "must contain at least one lowercase letter"
	msgPasswordDigit      = "must contain at least one digit"
	msgPasswordSpecial    = "must contain at least one special character"
	msgPasswordWhitespace = "must not start or end with whitespace"
)

// CheckPasswordComplexity reports whether a password satisfies the full
// complexity policy: at least 8 characters, an uppercase letter, a lowercase
// letter, a digit, a special character, and no leading whitespace. The empty
// string is rejected.
func CheckPasswordComplexity(password string) bool {
	if password == "" {
		return false
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}
	first, _ := utf8.DecodeRuneInString(password)
	if unicode.IsSpace(first) {
		return false
	}
	return hasUppercase(password) &&
		hasLowercase(password) &&
		hasDigit(password) &&
		hasSpecialChar(password)
}

// CheckPasswordStrength evaluates the same character-class policy as
// CheckPasswordComplexity but reports each requirement individually, in a
// fixed order suitable for rendering as a checklist. The whitespace
// requirement here is stricter than the boolean variant: neither leading nor
// trailing whitespace is allowed. An empty password fails every requirement.
func CheckPasswordStrength(password string) Result {
	if password == "" {
		return failAll(
			msgPasswordLength,
			msgPasswordUppercase,
			msgPasswordLowercase,
			msgPasswordDigit,
			msgPasswordSpecial,
			msgPasswordWhitespace,
		)
	}

	return Evaluate(
		Check{Passed: func() bool { return utf8.RuneCountInString(password) >= minPasswordLength }, Message: msgPasswordLength},
		Check{Passed: func() bool { return hasUppercase(password) }, Message: msgPasswordUppercase},
		Check{Passed: func() bool { return hasLowercase(password) }, Message: msgPasswordLowercase},
		Check{Passed: func() bool { return hasDigit(password) }, Message: msgPasswordDigit},
		Check{Passed: func() bool { return hasSpecialChar(password) }, Message: msgPasswordSpecial},
		Check{Passed: func() bool { return strings.TrimSpace(password) == password }, Message: msgPasswordWhitespace},
	)
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// A special character is anything that is not a letter, digit, or whitespace.
func hasSpecialChar(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
