package validator

import (
	"regexp"
	"slices"
	"strings"
)

var (
	// 6-14 characters after the dial prefix, digits/space/hyphen/parentheses
	// only, ending in a digit.
	phoneShapeRegex = regexp.MustCompile(`^(?:\+|00)[0-9 ()\-]{5,13}[0-9]$`)

	// Only digits, spaces, hyphens and parentheses after the dial prefix.
	phoneCharsetRegex = regexp.MustCompile(`^(?:\+|00)[0-9 ()\-]+$`)

	// Dial prefix immediately followed by a digit: the minimal shape the
	// country-code extraction needs. When this fails there is no candidate
	// code at all and the length requirement is forced false regardless of
	// the generic shape.
	phoneCodeStartRegex = regexp.MustCompile(`^(?:\+|00)[0-9]`)

	phoneNonDigitRegex = regexp.MustCompile(`[^0-9]`)
)

// Phone requirement messages, reported in this fixed order.
const (
	msgPhonePrefix      = "must start with a country code prefix (+ or 00)"
	msgPhoneLength      = "must have a valid number length"
	msgPhoneCharset     = "must contain only digits, spaces, hyphens, and parentheses"
	msgPhoneCountryCode = "must use a supported country code"
	msgPhoneMobile      = "must have a valid mobile prefix for its country"
)

// ValidateInternationalPhoneNumber evaluates a phone string against five
// requirements and reports each one: dial prefix, overall length, character
// set, recognized country code, and mobile prefix. The country context is
// computed once up front and all five requirements are built from it in a
// single pass. For a recognized country the length requirement additionally
// demands the exact national-number length from the numbering plan; the
// mobile-prefix requirement only applies when the country is recognized and
// defaults to met otherwise.
func ValidateInternationalPhoneNumber(phone string) Result {
	hasPrefix := strings.HasPrefix(phone, "+") || strings.HasPrefix(phone, "00")

	code, entry, recognized := lookupCountry(phone)

	// National number: digits after the dial prefix with the country code
	// removed. Only meaningful when the country is recognized.
	var national string
	if recognized {
		rest := strings.TrimPrefix(phone, "+")
		if rest == phone {
			rest = strings.TrimPrefix(phone, "00")
		}
		digits := phoneNonDigitRegex.ReplaceAllString(rest, "")
		national = digits[len(code):]
	}

	lengthOK := phoneCodeStartRegex.MatchString(phone) && phoneShapeRegex.MatchString(phone)
	if recognized {
		lengthOK = lengthOK && slices.Contains(entry.nationalLengths, len(national))
	}

	mobileOK := true
	if recognized {
		prefixLen := len(entry.mobilePrefixes[0])
		mobileOK = len(national) >= prefixLen && slices.Contains(entry.mobilePrefixes, national[:prefixLen])
	}

	return NewResult(
		Requirement{Met: hasPrefix, Message: msgPhonePrefix},
		Requirement{Met: lengthOK, Message: msgPhoneLength},
		Requirement{Met: phoneCharsetRegex.MatchString(phone), Message: msgPhoneCharset},
		Requirement{Met: recognized, Message: msgPhoneCountryCode},
		Requirement{Met: mobileOK, Message: msgPhoneMobile},
	)
}
