package sanitizer

import "strings"

// FormatPhoneNumber normalises a phone number to canonical +<digits> form.
// A leading 00 is rewritten to +, then spaces, hyphens and parentheses are
// stripped. The result must be + followed by 6-15 digits; anything else,
// including input without an international prefix, yields the empty string.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	if strings.HasPrefix(phone, "00") {
		phone = "+" + phone[2:]
	}
	phone = phoneSeparatorRegex.ReplaceAllString(phone, "")

	if !strings.HasPrefix(phone, "+") {
		return ""
	}
	if !canonicalPhoneRegex.MatchString(phone) {
		return ""
	}
	return phone
}

// NormalizePhoneDigits strips every non-digit character from a phone string,
// leaving a digits-only form suitable for comparison and storage.
func NormalizePhoneDigits(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// MaskPhone hides all but the last four digits of a phone number. Numbers
// with fewer than four digits are masked entirely.
func MaskPhone(phone string) string {
	digits := NormalizePhoneDigits(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// MaskEmail hides the local part of an email address while keeping the first
// character and the full domain, so users can still recognise their own
// address. Strings that do not look like an email are returned unchanged.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)

	local, domain, found := strings.Cut(email, "@")
	if !found || strings.Contains(domain, "@") {
		return email
	}

	switch len(local) {
	case 0:
		return email
	case 1:
		return "*@" + domain
	default:
		return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
	}
}
