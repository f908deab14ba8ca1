package sanitizer

import "regexp"

// Pre-compiled regular expressions, built once at package initialization.
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Digit extraction
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)

	// Separators stripped by phone formatting: spaces, hyphens, parentheses
	phoneSeparatorRegex = regexp.MustCompile(`[ ()\-]`)

	// Canonical international phone shape: + followed by 6-15 digits
	canonicalPhoneRegex = regexp.MustCompile(`^\+[0-9]{6,15}$`)
)
