package validator

import "regexp"

// Anchored at both ends: partial matches are not accepted. The local part is
// capped at 64 characters and the TLD at 63, per the usual DNS label limits.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]{1,64}@[A-Za-z0-9.\-]+\.[A-Za-z]{2,63}$`)

// ValidateEmail reports whether the whole string is a well-formed email
// address of the shape local@domain.tld. The empty string is invalid.
func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRegex.MatchString(email)
}
