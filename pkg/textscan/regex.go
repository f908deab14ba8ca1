package textscan

import "regexp"

// Pre-compiled scanning patterns. \p{L} and \p{N} keep the matching
// Unicode-aware instead of ASCII-only.
var (
	hashtagRegex = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	mentionRegex = regexp.MustCompile(`@[\p{L}\p{N}_]+`)

	// Scheme or www. prefix followed by the extended URL-safe character set.
	urlRegex = regexp.MustCompile(`(?:https?://|www\.)[\p{L}\p{N}\-._~:/?#\[\]@!$&'()*+,;=]+`)

	// Maximal runs of letters.
	wordRegex = regexp.MustCompile(`\p{L}+`)

	// Integers or decimals with a single fractional part.
	numberRegex = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

	// One character per match: anything that is not a letter, digit, or
	// whitespace.
	punctuationRegex = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
)
