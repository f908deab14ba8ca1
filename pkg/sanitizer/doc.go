// Package sanitizer provides stateless helpers for cleaning and normalising
// text input: whitespace normalization with optional special-character
// stripping and case transforms (CleanString), canonical phone-number
// formatting (FormatPhoneNumber), and masking of phone numbers and email
// addresses before they are logged or rendered.
//
// All helpers are small pure functions over strings. None of them returns an
// error: malformed input falls back to a safe result, usually the empty
// string. The package holds no mutable state and is safe for concurrent use.
//
// The higher-order Apply and Compose helpers build sanitisation pipelines
// from the individual transforms:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NormalizePhoneDigits,
//	    sanitizer.MaskPhone,
//	)
//	safe := clean("+1 (202) 555-0123") // "*******0123"
package sanitizer
